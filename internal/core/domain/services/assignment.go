package services

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
)

// Assignment errors.
var (
	// ErrCarrierNotRanked is returned when the selected carrier does not
	// appear among the match results the selection was made from.
	ErrCarrierNotRanked = errors.New("carrier not present in match results")

	// ErrNonCompliantCarrier indicates assignment was blocked because the
	// selected carrier's compliance status is non-compliant. Recoverable:
	// the operator must pick another carrier or obtain an override, which
	// this core does not itself authorize.
	ErrNonCompliantCarrier = errors.New("carrier is non-compliant")
)

// NonCompliantCarrierError reports a blocked assignment and identifies the
// offending carrier.
type NonCompliantCarrierError struct {
	CarrierID kernel.UUID
}

// NewNonCompliantCarrierError creates a NonCompliantCarrierError for the carrier.
func NewNonCompliantCarrierError(carrierID kernel.UUID) *NonCompliantCarrierError {
	return &NonCompliantCarrierError{CarrierID: carrierID}
}

func (e *NonCompliantCarrierError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNonCompliantCarrier, e.CarrierID)
}

func (e *NonCompliantCarrierError) Unwrap() error {
	return ErrNonCompliantCarrier
}

// AssignmentCoordinator validates a carrier selection against the ranked
// match results and drives the job's allocation transition.
//
// Business rules:
//   - The selected carrier must be present in the match results
//   - Non-compliant carriers cannot be allocated
//   - On success the job transitions booked -> allocated with the carrier set
//   - On any failure the job is left unmodified
//
// Persistence is the caller's responsibility; the coordinator only returns
// the mutated aggregate state.
type AssignmentCoordinator struct{}

// NewAssignmentCoordinator creates a new AssignmentCoordinator instance.
func NewAssignmentCoordinator() AssignmentCoordinator {
	return AssignmentCoordinator{}
}

// Allocate assigns the selected carrier to the job.
//
// Returns the deferred effects of the transition (none for allocation), or:
//   - ErrCarrierNotRanked when carrierID is absent from matchResults
//   - *NonCompliantCarrierError when the selection is non-compliant
//   - the job's transition errors when the lifecycle rejects the change
func (a AssignmentCoordinator) Allocate(
	j *job.Job, carrierID kernel.UUID, matchResults []MatchResult,
) ([]job.DeferredEffect, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}

	if err := carrierID.Validate(); err != nil {
		return nil, err
	}

	selected, found := findResult(matchResults, carrierID)
	if !found {
		return nil, ErrCarrierNotRanked
	}

	if selected.ComplianceStatus == carrier.NonCompliant {
		return nil, NewNonCompliantCarrierError(carrierID)
	}

	return j.TransitionTo(job.Allocated, job.TransitionContext{
		AssignedCarrierID: &carrierID,
	})
}

// SelectBest returns the top-ranked carrier that is not non-compliant, for
// automatic allocation. Returns false when no eligible carrier exists.
func (a AssignmentCoordinator) SelectBest(matchResults []MatchResult) (MatchResult, bool) {
	for _, result := range matchResults {
		if result.ComplianceStatus != carrier.NonCompliant {
			return result, true
		}
	}
	return MatchResult{}, false
}

// findResult locates the match result for the given carrier.
func findResult(matchResults []MatchResult, carrierID kernel.UUID) (MatchResult, bool) {
	for _, result := range matchResults {
		if result.CarrierID.IsEqual(carrierID) {
			return result, true
		}
	}
	return MatchResult{}, false
}
