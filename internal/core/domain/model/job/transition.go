package job

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
)

// Sentinel errors for lifecycle transition failures. Both are typed values,
// never used for control flow beyond classification by the caller.
var (
	// ErrUnknownTransition indicates the requested (from, to) pair is absent
	// from the transition table. This is a caller error and is never retried.
	ErrUnknownTransition = errors.New("unknown status transition")

	// ErrPreconditionNotMet indicates a legal transition whose guard failed.
	// Recoverable: the operator is told which condition is missing.
	ErrPreconditionNotMet = errors.New("transition precondition not met")
)

// UnknownTransitionError reports a (from, to) pair that is not in the
// transition table.
type UnknownTransitionError struct {
	From Status
	To   Status
}

// NewUnknownTransitionError creates an UnknownTransitionError for the pair.
func NewUnknownTransitionError(from, to Status) *UnknownTransitionError {
	return &UnknownTransitionError{From: from, To: to}
}

func (e *UnknownTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrUnknownTransition, e.From, e.To)
}

func (e *UnknownTransitionError) Unwrap() error {
	return ErrUnknownTransition
}

// PreconditionNotMetError reports a legal transition rejected because its
// guard failed. Condition names the specific missing condition so it can be
// surfaced to the operator.
type PreconditionNotMetError struct {
	From      Status
	To        Status
	Condition string
}

// NewPreconditionNotMetError creates a PreconditionNotMetError naming the
// missing condition.
func NewPreconditionNotMetError(from, to Status, condition string) *PreconditionNotMetError {
	return &PreconditionNotMetError{From: from, To: to, Condition: condition}
}

func (e *PreconditionNotMetError) Error() string {
	return fmt.Sprintf("%s: %s -> %s requires %s", ErrPreconditionNotMet, e.From, e.To, e.Condition)
}

func (e *PreconditionNotMetError) Unwrap() error {
	return ErrPreconditionNotMet
}

// TransitionContext carries the facts a transition guard may need beyond the
// job's own state. The caller assembles it from the request and the clock;
// the aggregate never performs I/O to evaluate a guard.
type TransitionContext struct {
	// AssignedCarrierID is the carrier being allocated.
	// Required for booked -> allocated.
	AssignedCarrierID *kernel.UUID

	// PaymentConfirmed records that payment confirmation was received.
	// Required for invoiced -> cleared.
	PaymentConfirmed bool

	// ArchiveDue records that the scheduled archival delay has elapsed.
	// Set only by the deferred-effect sweep. Required for completed -> archived.
	ArchiveDue bool

	// Now is the transition timestamp, supplied by the caller so the
	// aggregate stays clock-free and deterministic.
	Now time.Time
}

// EffectKind identifies a deferred effect emitted by a transition.
type EffectKind string

// EffectArchiveJob asks the scheduler to archive the job after the
// configured delay since completion.
const EffectArchiveJob EffectKind = "archive_job"

// DeferredEffect is a state-machine-triggered action that must execute after
// a delay. Effects are returned from TransitionTo for the caller to hand to
// the external scheduler; the aggregate itself never schedules anything.
type DeferredEffect struct {
	Kind  EffectKind
	JobID kernel.UUID
}
