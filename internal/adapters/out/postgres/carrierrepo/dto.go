// Package carrierrepo provides data transfer objects and mapping functions for carrier persistence.
// This package implements the repository pattern for the carrier domain aggregate, handling
// the conversion between domain entities and database representations.
package carrierrepo

import (
	"time"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CarrierDTO represents the database structure for persisting carrier aggregates.
// The free-text capability sets are stored as postgres text arrays so the
// directory can be filtered on membership without join tables.
type CarrierDTO struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name              string         `gorm:"type:varchar(255);not null"`
	RegionsOfInterest pq.StringArray `gorm:"type:text[]"`
	FleetTypes        pq.StringArray `gorm:"type:text[]"`
	ServicesOffered   pq.StringArray `gorm:"type:text[]"`
	HasWarehousing    bool           `gorm:"not null"`
	Documents         []DocumentDTO  `gorm:"foreignKey:CarrierID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for carrier entities.
// Overrides GORM's default naming convention to use "carriers" instead of "carrier_dtos".
func (CarrierDTO) TableName() string {
	return "carriers"
}

// DocumentDTO represents the database structure for persisting compliance documents.
// Links to the carrier via foreign key. Documents have no identity in the
// domain model, so rows are replaced wholesale on carrier updates.
type DocumentDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	CarrierID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Type       string    `gorm:"type:varchar(255);not null"`
	IssueDate  time.Time `gorm:"not null"`
	ExpiryDate time.Time `gorm:"not null"`
}

// TableName specifies the database table name for compliance document entities.
// Overrides GORM's default naming convention to use "carrier_documents".
func (DocumentDTO) TableName() string {
	return "carrier_documents"
}

// fromDomain converts a carrier domain aggregate to its database representation.
// Maps all aggregate state including the compliance document set.
func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	carrierID := aggregate.ID().Bytes()
	documents := make([]DocumentDTO, 0, len(aggregate.ComplianceDocuments()))

	for _, document := range aggregate.ComplianceDocuments() {
		documents = append(documents, DocumentDTO{
			CarrierID:  carrierID,
			Type:       document.Type(),
			IssueDate:  document.IssueDate(),
			ExpiryDate: document.ExpiryDate(),
		})
	}

	return CarrierDTO{
		ID:                carrierID,
		Name:              aggregate.Name(),
		RegionsOfInterest: pq.StringArray(aggregate.RegionsOfInterest()),
		FleetTypes:        pq.StringArray(aggregate.FleetTypes()),
		ServicesOffered:   pq.StringArray(aggregate.ServicesOffered()),
		HasWarehousing:    aggregate.HasWarehousing(),
		Documents:         documents,
	}
}

// toDomain converts a database DTO to a carrier domain aggregate.
// Reconstructs the complete aggregate including all compliance documents
// using RestoreCarrier.
func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	documents := make([]carrier.ComplianceDocument, 0, len(dto.Documents))
	for _, documentDto := range dto.Documents {
		document, documentErr := carrier.NewComplianceDocument(
			documentDto.Type, documentDto.IssueDate, documentDto.ExpiryDate,
		)
		if documentErr != nil {
			return nil, documentErr
		}
		documents = append(documents, document)
	}

	return carrier.RestoreCarrier(
		id,
		dto.Name,
		dto.RegionsOfInterest,
		dto.FleetTypes,
		dto.ServicesOffered,
		dto.HasWarehousing,
		documents,
	)
}
