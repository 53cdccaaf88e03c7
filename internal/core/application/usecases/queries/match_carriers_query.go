package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrMatchCarriersQueryIsNotConstructed = errors.New(
	"MatchCarriersQuery must be created via NewMatchCarriersQuery constructor",
)

// MatchCarriersQuery ranks every registered carrier against one job's
// requirements. The ranking is computed per request and never persisted:
// two identical requests against unchanged data return identical results.
type MatchCarriersQuery struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMatchCarriersQuery creates a query to rank carriers for the given job.
func NewMatchCarriersQuery(jobID kernel.UUID) (MatchCarriersQuery, error) {
	matchQuery := MatchCarriersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := matchQuery.setJobID(jobID); err != nil {
		return MatchCarriersQuery{}, err
	}

	return matchQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrMatchCarriersQueryIsNotConstructed if validation fails.
func (q MatchCarriersQuery) Validate() error {
	return q.guard.Validate(ErrMatchCarriersQueryIsNotConstructed)
}

// JobID returns the job the carriers are ranked against.
func (q MatchCarriersQuery) JobID() kernel.UUID {
	return q.jobID
}

func (q *MatchCarriersQuery) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	q.jobID = jobID
	return nil
}

// MatchCarriersQueryResponse represents one ranked carrier.
// Results arrive ordered best-first.
type MatchCarriersQueryResponse struct {
	CarrierID        kernel.UUID
	CarrierName      string
	Score            int
	Reasons          []string
	ComplianceStatus string
}
