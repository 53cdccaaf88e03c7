package job

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
)

var (
	// ErrJobIsNotConstructed is returned when a Job instance was not created
	// through the NewJob or RestoreJob factory functions.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")

	// ErrNoInterruptedStatus is returned when resolving issues on a job that
	// never recorded the state it interrupted. Indicates corrupted state.
	ErrNoInterruptedStatus = errors.New("job in issues status has no interrupted status to resume")
)

// Job represents a single transport order requiring pickup, carriage, and
// delivery. It is the aggregate root owning the lifecycle state machine:
// every status change goes through TransitionTo, which validates the
// transition table, evaluates preconditions, and emits deferred effects.
//
// Invariants:
//   - Must have a valid unique identifier, requirements, and agreed value
//   - assignedCarrierID is non-nil whenever status is at or beyond Allocated
//   - Status changes follow the fixed transition table; no partial transitions
//   - version supports optimistic concurrency at write time; two transition
//     requests against the same stored job cannot both succeed
//   - Can only be created through NewJob or RestoreJob
//
// Jobs are never deleted by the core; archival is a status, not removal.
type Job struct {
	// id is the unique identifier for the job
	id kernel.UUID

	// requirements captures the vehicle category and regions the job demands
	requirements Requirements

	// agreedValue is the currency-tagged price agreed for the job
	agreedValue kernel.Money

	// status is the current state in the job lifecycle
	status Status

	// proofOfDeliveryUploaded records that a delivery-proof document exists.
	// Gate for the finished -> invoiced transition.
	proofOfDeliveryUploaded bool

	// assignedCarrierID is the allocated carrier (nil before allocation)
	assignedCarrierID *kernel.UUID

	// interruptedStatus remembers the state the Issues state interrupted
	// (Unknown when the job is not in Issues)
	interruptedStatus Status

	// completedAt is set when the job reaches Completed; it anchors the
	// deferred archival delay
	completedAt *time.Time

	// version is the optimistic-concurrency token compared at write time
	version int64

	// isConstructed ensures the job was created via a factory function
	isConstructed bool
}

// NewJob creates a new Job in Booked status with version 1.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - requirements: vehicle/region demands (must be constructed)
//   - agreedValue: the agreed price (must be constructed)
//
// Returns the job, or a validation error if any parameter is invalid.
func NewJob(id kernel.UUID, requirements Requirements, agreedValue kernel.Money) (*Job, error) {
	j := &Job{
		status:        Booked,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setRequirements(requirements),
		j.setAgreedValue(agreedValue),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreJob reconstructs a Job aggregate from persistent storage.
// Unlike NewJob, it accepts the full persisted state and re-checks the
// status/carrier consistency invariant so corrupted rows are rejected at
// the boundary.
func RestoreJob(
	id kernel.UUID,
	requirements Requirements,
	agreedValue kernel.Money,
	status Status,
	assignedCarrierID *kernel.UUID,
	proofOfDeliveryUploaded bool,
	interruptedStatus Status,
	completedAt *time.Time,
	version int64,
) (*Job, error) {
	j := &Job{
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setRequirements(requirements),
		j.setAgreedValue(agreedValue),
		status.Validate(),
		status.ValidateCanHaveCarrier(assignedCarrierID != nil),
	); err != nil {
		return nil, err
	}

	if assignedCarrierID != nil {
		if err := assignedCarrierID.Validate(); err != nil {
			return nil, err
		}
	}

	if interruptedStatus != Unknown {
		if err := interruptedStatus.Validate(); err != nil {
			return nil, err
		}
	}

	j.status = status
	j.assignedCarrierID = assignedCarrierID
	j.proofOfDeliveryUploaded = proofOfDeliveryUploaded
	j.interruptedStatus = interruptedStatus
	j.completedAt = completedAt
	j.version = version

	return j, nil
}

// Validate ensures the Job instance was created through a factory function.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

// IsEqual compares two jobs by their unique identifiers.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// Requirements returns what the job demands from a carrier.
func (j *Job) Requirements() Requirements {
	return j.requirements
}

// AgreedValue returns the agreed price for the job.
func (j *Job) AgreedValue() kernel.Money {
	return j.agreedValue
}

// Status returns the current lifecycle status.
func (j *Job) Status() Status {
	return j.status
}

// ProofOfDeliveryUploaded reports whether a delivery-proof document has been
// recorded for the job.
func (j *Job) ProofOfDeliveryUploaded() bool {
	return j.proofOfDeliveryUploaded
}

// AssignedCarrier returns the allocated carrier's ID, or nil before allocation.
func (j *Job) AssignedCarrier() *kernel.UUID {
	return j.assignedCarrierID
}

// InterruptedStatus returns the state the Issues state interrupted,
// or Unknown when the job is not interrupted.
func (j *Job) InterruptedStatus() Status {
	return j.interruptedStatus
}

// CompletedAt returns when the job reached Completed, or nil.
func (j *Job) CompletedAt() *time.Time {
	return j.completedAt
}

// Version returns the optimistic-concurrency token.
func (j *Job) Version() int64 {
	return j.version
}

// RecordProofOfDelivery marks that a delivery-proof document was stored for
// the job. The document itself lives in the external document store; the
// core only tracks the fact, which gates the finished -> invoiced transition.
func (j *Job) RecordProofOfDelivery() error {
	if j.status.IsTerminal() {
		return NewUnknownTransitionError(j.status, j.status)
	}

	j.proofOfDeliveryUploaded = true
	return nil
}

// TransitionTo validates and applies a lifecycle transition.
//
// The method checks (current, target) against the transition table, then
// evaluates the row's precondition against the job's own state and the
// supplied context. On success the full state change (status, carrier
// assignment for allocation, completion timestamp) is applied and any deferred
// effects the transition triggers are returned for the caller to schedule.
// On failure the job is left unmodified and a typed error identifies which
// rule failed:
//
//   - *UnknownTransitionError: the pair is not in the table (caller error)
//   - *PreconditionNotMetError: the guard failed, naming the missing condition
//
// The orthogonal Issues state is handled by rule: any non-terminal status may
// transition to Issues (recording the interrupted state), and a job in Issues
// may only transition back to the state it interrupted.
func (j *Job) TransitionTo(target Status, tctx TransitionContext) ([]DeferredEffect, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}

	if err := target.Validate(); err != nil {
		return nil, err
	}

	if j.status == Issues {
		return nil, j.resolveIssues(target)
	}

	if target == Issues {
		return nil, j.reportIssues()
	}

	transition, ok := findTransition(j.status, target)
	if !ok {
		return nil, NewUnknownTransitionError(j.status, target)
	}

	if err := j.checkPrecondition(transition, tctx); err != nil {
		return nil, err
	}

	return j.apply(transition, tctx), nil
}

// reportIssues moves a non-terminal job into the Issues state, remembering
// the state it interrupted.
func (j *Job) reportIssues() error {
	if j.status.IsTerminal() {
		return NewUnknownTransitionError(j.status, Issues)
	}

	j.interruptedStatus = j.status
	j.status = Issues
	return nil
}

// resolveIssues returns an interrupted job to the state the issue interrupted.
// Any other target is an unknown transition.
func (j *Job) resolveIssues(target Status) error {
	if j.interruptedStatus == Unknown {
		return ErrNoInterruptedStatus
	}

	if target != j.interruptedStatus {
		return NewUnknownTransitionError(Issues, target)
	}

	j.status = j.interruptedStatus
	j.interruptedStatus = Unknown
	return nil
}

// checkPrecondition evaluates the transition guard against the job's state
// and the supplied context. Returns a PreconditionNotMetError naming the
// missing condition, or nil.
func (j *Job) checkPrecondition(t StatusTransition, tctx TransitionContext) error {
	switch t.Precondition {
	case PreconditionNone:
		return nil

	case PreconditionCarrierAssigned:
		if tctx.AssignedCarrierID == nil || tctx.AssignedCarrierID.Validate() != nil {
			return NewPreconditionNotMetError(t.From, t.To, "an assigned carrier")
		}

	case PreconditionProofOfDelivery:
		if !j.proofOfDeliveryUploaded {
			return NewPreconditionNotMetError(t.From, t.To, "an uploaded proof of delivery")
		}

	case PreconditionPaymentConfirmed:
		if !tctx.PaymentConfirmed {
			return NewPreconditionNotMetError(t.From, t.To, "a payment confirmation")
		}

	case PreconditionArchiveDue:
		if !tctx.ArchiveDue {
			return NewPreconditionNotMetError(t.From, t.To, "the elapsed archival delay")
		}
	}

	return nil
}

// apply performs the full state change for a validated transition and
// returns the deferred effects it triggers. Completion stamps completedAt
// and emits the archival effect; allocation records the carrier.
func (j *Job) apply(t StatusTransition, tctx TransitionContext) []DeferredEffect {
	j.status = t.To

	if t.Precondition == PreconditionCarrierAssigned {
		j.assignedCarrierID = tctx.AssignedCarrierID
	}

	if t.To == Completed {
		completedAt := tctx.Now
		j.completedAt = &completedAt
		return []DeferredEffect{{Kind: EffectArchiveJob, JobID: j.id}}
	}

	return nil
}

// setID validates and sets the job's unique identifier.
func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

// setRequirements validates and sets the job's requirements.
func (j *Job) setRequirements(requirements Requirements) error {
	if err := requirements.Validate(); err != nil {
		return err
	}
	j.requirements = requirements
	return nil
}

// setAgreedValue validates and sets the agreed price.
func (j *Job) setAgreedValue(agreedValue kernel.Money) error {
	if err := agreedValue.Validate(); err != nil {
		return err
	}
	j.agreedValue = agreedValue
	return nil
}
