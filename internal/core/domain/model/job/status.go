package job

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status represents the lifecycle state of a transport job.
// It implements a state machine with a fixed transition table to ensure
// jobs follow the correct operational workflow.
//
// State graph:
//
//	Booked ──> Allocated ──> InProgress ──> Finished ──> Invoiced ──> Cleared ──> Completed ──> Archived
//	   │            │             │             │            │            │            │
//	   └────────────┴─────────────┴──────┬──────┴────────────┴────────────┘            │
//	                                     │                                             │
//	                                  Issues ──(resolve)──> prior state                │
//	                                                                                   │
//	                           Archived is terminal; reached via a deferred effect ────┘
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Booked is the initial status when a job is first created.
	// Jobs in this status are waiting to be matched to a carrier.
	Booked

	// Allocated indicates the job has been assigned to a carrier.
	Allocated

	// InProgress indicates the carrier has started executing the job.
	InProgress

	// Finished indicates the physical delivery leg is done.
	// Proof of delivery is expected before invoicing.
	Finished

	// Invoiced indicates the customer has been invoiced for the job.
	Invoiced

	// Cleared indicates payment for the invoice has been confirmed.
	Cleared

	// Completed indicates all commercial activity on the job is done.
	// Completion schedules the deferred archival effect.
	Completed

	// Archived is the terminal state. Archival is a status, not removal;
	// archived jobs stay in the record store.
	Archived

	// Issues is an orthogonal state reachable from any non-terminal state.
	// It interrupts the normal flow until the issue is explicitly resolved,
	// at which point the job returns to the state it interrupted.
	Issues
)

// Precondition identifies the guard a transition must satisfy before it is
// applied. Preconditions are evaluated by the Job aggregate against its own
// state and the supplied TransitionContext.
type Precondition int

const (
	// PreconditionNone marks an unguarded transition.
	PreconditionNone Precondition = iota

	// PreconditionCarrierAssigned requires an assigned carrier identifier
	// in the transition context (booked -> allocated).
	PreconditionCarrierAssigned

	// PreconditionProofOfDelivery requires the proof-of-delivery document
	// to have been recorded on the job (finished -> invoiced).
	PreconditionProofOfDelivery

	// PreconditionPaymentConfirmed requires payment confirmation in the
	// transition context (invoiced -> cleared).
	PreconditionPaymentConfirmed

	// PreconditionArchiveDue requires the archival delay to have elapsed.
	// Only the deferred-effect sweep sets this flag (completed -> archived).
	PreconditionArchiveDue
)

// StatusTransition is one row of the static transition table:
// a legal (from, to) pair, its operator-facing label, and the guard it
// must satisfy. The table is fixed at compile time.
type StatusTransition struct {
	From         Status
	To           Status
	Label        string
	Precondition Precondition
}

// statusTransitions is the authoritative table for the main lifecycle chain.
// The orthogonal Issues state is handled by rule (any non-terminal state may
// be interrupted, and resolution returns to the interrupted state), not by
// enumerating rows per state.
var statusTransitions = []StatusTransition{
	{From: Booked, To: Allocated, Label: "carrier allocated", Precondition: PreconditionCarrierAssigned},
	{From: Allocated, To: InProgress, Label: "job started", Precondition: PreconditionNone},
	{From: InProgress, To: Finished, Label: "delivery finished", Precondition: PreconditionNone},
	{From: Finished, To: Invoiced, Label: "invoice raised", Precondition: PreconditionProofOfDelivery},
	{From: Invoiced, To: Cleared, Label: "payment cleared", Precondition: PreconditionPaymentConfirmed},
	{From: Cleared, To: Completed, Label: "job completed", Precondition: PreconditionNone},
	{From: Completed, To: Archived, Label: "job archived", Precondition: PreconditionArchiveDue},
}

// Transitions returns a copy of the static transition table for the main
// lifecycle chain.
func Transitions() []StatusTransition {
	table := make([]StatusTransition, len(statusTransitions))
	copy(table, statusTransitions)
	return table
}

// findTransition looks up the table row for the (from, to) pair.
// Returns false when the pair is not in the table.
func findTransition(from, to Status) (StatusTransition, bool) {
	for _, t := range statusTransitions {
		if t.From == from && t.To == to {
			return t, true
		}
	}
	return StatusTransition{}, false
}

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Booked:     "booked",
		Allocated:  "allocated",
		InProgress: "in-progress",
		Finished:   "finished",
		Invoiced:   "invoiced",
		Cleared:    "cleared",
		Completed:  "completed",
		Archived:   "archived",
		Issues:     "issues",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Booked:     "booked",
		Allocated:  "allocated",
		InProgress: "in-progress",
		Finished:   "finished",
		Invoiced:   "invoiced",
		Cleared:    "cleared",
		Completed:  "completed",
		Archived:   "archived",
		Issues:     "issues",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status, e.g. "in-progress".
// Implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses the lowercase status name produced by String.
// Used when statuses arrive from the HTTP layer or persistence.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status name", s))
}

// IsTerminal reports whether the status admits no further transitions.
// Archived is the only terminal state.
func (s Status) IsTerminal() bool {
	return s == Archived
}

// IsAtOrBeyondAllocated reports whether the status sits at or past the
// allocation point in the lifecycle order. Jobs in these states must carry
// an assigned carrier.
func (s Status) IsAtOrBeyondAllocated() bool {
	return s >= Allocated && s <= Archived
}

// ValidateCanHaveCarrier enforces the consistency rule between status and
// carrier assignment: a carrier is required at or beyond Allocated and
// forbidden before it. The Issues state inherits the rule from the state it
// interrupted, so it accepts both.
func (s Status) ValidateCanHaveCarrier(hasCarrier bool) error {
	if s == Issues {
		return nil
	}

	if hasCarrier && !s.IsAtOrBeyondAllocated() {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have a carrier", s.String()))
	}

	if !hasCarrier && s.IsAtOrBeyondAllocated() {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have no carrier", s.String()))
	}

	return nil
}
