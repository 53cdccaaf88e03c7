package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetCarriersQueryHandler retrieves carrier directory entries from the
// database. Filtering happens in SQL; the array-typed capability columns are
// matched with ANY so membership checks stay on the database side.
type GetCarriersQueryHandler struct {
	db *gorm.DB
}

// NewGetCarriersQueryHandler creates a handler for carrier directory queries.
// Requires a GORM database connection for query execution.
func NewGetCarriersQueryHandler(db *gorm.DB) GetCarriersQueryHandler {
	return GetCarriersQueryHandler{db: db}
}

// Handle executes the query to retrieve carriers matching the filter.
// Results are sorted by name for consistent output.
func (h GetCarriersQueryHandler) Handle(
	ctx context.Context,
	query GetCarriersQuery,
) ([]GetCarriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			regions_of_interest,
			fleet_types,
			services_offered,
			has_warehousing
		FROM carriers
		WHERE 1=1
	`
	args := make([]any, 0, 3)

	if query.Region() != "" {
		sql += " AND ? = ANY(regions_of_interest)"
		args = append(args, query.Region())
	}
	if query.FleetType() != "" {
		sql += " AND ? = ANY(fleet_types)"
		args = append(args, query.FleetType())
	}
	if query.Search() != "" {
		sql += " AND name ILIKE ?"
		args = append(args, "%"+query.Search()+"%")
	}

	sql += " ORDER BY name"

	carriers := make([]GetCarriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var carrierResp GetCarriersQueryResponse
		var id uuid.UUID
		var regions, fleet, services pq.StringArray

		err = rows.Scan(
			&id,
			&carrierResp.Name,
			&regions,
			&fleet,
			&services,
			&carrierResp.HasWarehousing,
		)
		if err != nil {
			return nil, err
		}

		carrierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		carrierResp.ID = carrierID
		carrierResp.RegionsOfInterest = regions
		carrierResp.FleetTypes = fleet
		carrierResp.ServicesOffered = services

		carriers = append(carriers, carrierResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return carriers, nil
}
