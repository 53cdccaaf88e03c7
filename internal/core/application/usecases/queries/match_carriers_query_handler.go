package queries

import (
	"context"
	"time"

	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
)

// MatchCarriersQueryHandler computes the carrier ranking for a job.
// Unlike the pure read models, matching needs the full domain aggregates, so
// the handler reads through the repositories and delegates the scoring to
// the matching service.
type MatchCarriersQueryHandler struct {
	jobRepo     ports.JobRepository
	carrierRepo ports.CarrierRepository
	matcher     services.CarrierMatcher
}

// NewMatchCarriersQueryHandler creates a handler for carrier match queries.
func NewMatchCarriersQueryHandler(
	jobRepo ports.JobRepository,
	carrierRepo ports.CarrierRepository,
	matcher services.CarrierMatcher,
) MatchCarriersQueryHandler {
	return MatchCarriersQueryHandler{
		jobRepo:     jobRepo,
		carrierRepo: carrierRepo,
		matcher:     matcher,
	}
}

// Handle executes the match query.
// Loads the job and every registered carrier, ranks them as of now, and
// returns the results best-first. An empty carrier directory yields an
// empty ranking, not an error.
func (h MatchCarriersQueryHandler) Handle(
	ctx context.Context,
	query MatchCarriersQuery,
) ([]MatchCarriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	matchedJob, err := h.jobRepo.Get(ctx, query.JobID())
	if err != nil {
		return nil, err
	}

	carriers, err := h.carrierRepo.GetAll(ctx, ports.CarrierFilter{})
	if err != nil {
		return nil, err
	}

	matchResults, err := h.matcher.Rank(matchedJob, carriers, time.Now())
	if err != nil {
		return nil, err
	}

	responses := make([]MatchCarriersQueryResponse, 0, len(matchResults))
	for _, result := range matchResults {
		responses = append(responses, MatchCarriersQueryResponse{
			CarrierID:        result.CarrierID,
			CarrierName:      result.CarrierName,
			Score:            result.Score,
			Reasons:          result.Reasons,
			ComplianceStatus: result.ComplianceStatus.String(),
		})
	}

	return responses, nil
}
