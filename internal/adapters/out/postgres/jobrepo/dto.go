// Package jobrepo provides data transfer objects and mapping functions for job persistence.
// This package implements the repository pattern for the job domain aggregate, handling
// the conversion between domain entities and database representations.
package jobrepo

import (
	"time"

	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting job aggregates.
// Statuses are stored as their string form so the rows stay readable and
// the enum can grow without renumbering. The version column carries the
// optimistic-concurrency token checked on every update.
type JobDTO struct {
	ID                      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	VehicleType             string     `gorm:"type:varchar(255)"`
	PickupRegion            string     `gorm:"type:varchar(255);not null"`
	DeliveryRegion          string     `gorm:"type:varchar(255);not null"`
	AgreedAmount            int64      `gorm:"type:bigint;not null"`
	AgreedCurrency          string     `gorm:"type:varchar(3);not null"`
	Status                  string     `gorm:"type:varchar(32);not null;index"`
	ProofOfDeliveryUploaded bool       `gorm:"not null"`
	AssignedCarrierID       *uuid.UUID `gorm:"type:uuid;index"`
	InterruptedStatus       string     `gorm:"type:varchar(32)"`
	CompletedAt             *time.Time
	Version                 int64 `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for job entities.
// Overrides GORM's default naming convention to use "jobs".
func (JobDTO) TableName() string {
	return "jobs"
}

// fromDomain converts a job domain aggregate to its database representation.
// Maps all job attributes including optional carrier assignment and the
// interrupted status memory of the issues state.
func fromDomain(aggregate *job.Job) JobDTO {
	var carrierID *uuid.UUID
	if id := aggregate.AssignedCarrier(); id != nil {
		raw := id.Bytes()
		carrierID = &raw
	}

	var interruptedStatus string
	if aggregate.InterruptedStatus() != job.Unknown {
		interruptedStatus = aggregate.InterruptedStatus().String()
	}

	return JobDTO{
		ID:                      aggregate.ID().Bytes(),
		VehicleType:             aggregate.Requirements().VehicleType(),
		PickupRegion:            aggregate.Requirements().PickupRegion(),
		DeliveryRegion:          aggregate.Requirements().DeliveryRegion(),
		AgreedAmount:            aggregate.AgreedValue().Amount(),
		AgreedCurrency:          aggregate.AgreedValue().Currency(),
		Status:                  aggregate.Status().String(),
		ProofOfDeliveryUploaded: aggregate.ProofOfDeliveryUploaded(),
		AssignedCarrierID:       carrierID,
		InterruptedStatus:       interruptedStatus,
		CompletedAt:             aggregate.CompletedAt(),
		Version:                 aggregate.Version(),
	}
}

// toDomain converts a database DTO to a job domain aggregate.
// Reconstructs the complete aggregate using RestoreJob so corrupted rows
// fail the domain invariants at the boundary.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requirements, err := job.NewRequirements(dto.VehicleType, dto.PickupRegion, dto.DeliveryRegion)
	if err != nil {
		return nil, err
	}

	agreedValue, err := kernel.NewMoney(dto.AgreedAmount, dto.AgreedCurrency)
	if err != nil {
		return nil, err
	}

	status, err := job.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var carrierID *kernel.UUID
	if dto.AssignedCarrierID != nil {
		cID, carrierErr := kernel.UUIDFromBytes((*dto.AssignedCarrierID)[:])
		if carrierErr != nil {
			return nil, carrierErr
		}

		carrierID = &cID
	}

	interruptedStatus := job.Unknown
	if dto.InterruptedStatus != "" {
		interruptedStatus, err = job.StatusFromString(dto.InterruptedStatus)
		if err != nil {
			return nil, err
		}
	}

	return job.RestoreJob(
		id,
		requirements,
		agreedValue,
		status,
		carrierID,
		dto.ProofOfDeliveryUploaded,
		interruptedStatus,
		dto.CompletedAt,
		dto.Version,
	)
}
