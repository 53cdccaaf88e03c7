package queries

import (
	"context"

	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveJobsQueryHandler retrieves active jobs from the database.
// Filters out archived jobs to provide the live workload view.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetActiveJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveJobsQueryHandler creates a handler for active job queries.
// Requires a GORM database connection for query execution.
func NewGetActiveJobsQueryHandler(db *gorm.DB) GetActiveJobsQueryHandler {
	return GetActiveJobsQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-archived jobs.
// Results are sorted by job ID for consistent output.
func (h GetActiveJobsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveJobsQuery,
) ([]GetActiveJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	jobs := make([]GetActiveJobsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vehicle_type,
			pickup_region,
			delivery_region,
			agreed_amount,
			agreed_currency,
			status,
			proof_of_delivery_uploaded,
			assigned_carrier_id,
			version
		FROM jobs
		WHERE status != ?
		ORDER BY id
	`, job.Archived.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var jobResp GetActiveJobsQueryResponse
		var id uuid.UUID
		var carrierID uuid.NullUUID

		err = rows.Scan(
			&id,
			&jobResp.VehicleType,
			&jobResp.PickupRegion,
			&jobResp.DeliveryRegion,
			&jobResp.AgreedAmount,
			&jobResp.AgreedCurrency,
			&jobResp.Status,
			&jobResp.ProofOfDeliveryUploaded,
			&carrierID,
			&jobResp.Version,
		)
		if err != nil {
			return nil, err
		}

		jobID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		jobResp.ID = jobID

		if carrierID.Valid {
			assignedID, carrierErr := kernel.UUIDFromBytes(carrierID.UUID[:])
			if carrierErr != nil {
				return nil, carrierErr
			}
			jobResp.AssignedCarrierID = &assignedID
		}

		jobs = append(jobs, jobResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
