package commands

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
)

var (
	ErrNoCarriersFound        = errors.New("no carriers found")
	ErrNoEligibleCarrierFound = errors.New("no eligible carrier found")
)

// AllocateCarrierCommandHandler orchestrates the carrier allocation process.
// Loads the job and the candidate carriers, ranks them through the matching
// service, validates the selection, and drives the job's allocation
// transition. Both aggregates are read and the job is updated within a
// single transaction.
//
// Example:
//
//	handler := NewAllocateCarrierCommandHandler(uowFactory, matcher, coordinator)
//	cmd, _ := NewAllocateCarrierCommand(jobID, nil)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoCarriersFound):
//	    log.Println("No carriers registered")
//	case errors.Is(err, ErrNoEligibleCarrierFound):
//	    log.Println("Every candidate is non-compliant")
//	case errors.Is(err, services.ErrNonCompliantCarrier):
//	    log.Println("Selected carrier is blocked")
//	case err != nil:
//	    log.Printf("Allocation failed: %v", err)
//	}
type AllocateCarrierCommandHandler struct {
	uowFactory  UoWFactory
	matcher     services.CarrierMatcher
	coordinator services.AssignmentCoordinator
}

// NewAllocateCarrierCommandHandler creates a handler for carrier allocation.
// Requires a UoWFactory for coordinating reads and the job update in one
// transaction, plus the matching and assignment domain services.
func NewAllocateCarrierCommandHandler(
	uowFactory UoWFactory,
	matcher services.CarrierMatcher,
	coordinator services.AssignmentCoordinator,
) AllocateCarrierCommandHandler {
	return AllocateCarrierCommandHandler{
		uowFactory:  uowFactory,
		matcher:     matcher,
		coordinator: coordinator,
	}
}

// Handle processes the carrier allocation command.
// Ranks every registered carrier against the job, then either validates the
// explicit selection or picks the best eligible candidate. The allocation
// transition assigns the carrier and moves the job to Allocated status.
func (h AllocateCarrierCommandHandler) Handle(ctx context.Context, command AllocateCarrierCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	carrierRepo := uow.CarrierRepository()

	allocatedJob, err := jobRepo.Get(ctx, command.JobID())
	if err != nil {
		return err
	}

	carriers, err := carrierRepo.GetAll(ctx, ports.CarrierFilter{})
	if err != nil {
		return err
	}
	if len(carriers) == 0 {
		return ErrNoCarriersFound
	}

	matchResults, err := h.matcher.Rank(allocatedJob, carriers, time.Now())
	if err != nil {
		return err
	}

	carrierID := command.CarrierID()
	if carrierID == nil {
		best, found := h.coordinator.SelectBest(matchResults)
		if !found {
			return ErrNoEligibleCarrierFound
		}
		carrierID = &best.CarrierID
	}

	if _, err = h.coordinator.Allocate(allocatedJob, *carrierID, matchResults); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, allocatedJob); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
