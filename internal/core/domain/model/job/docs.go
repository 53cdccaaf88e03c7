// Package job contains the Job aggregate and its lifecycle state machine.
//
// A job moves along a fixed status graph (booked, allocated, in-progress,
// finished, invoiced, cleared, completed, archived) with an orthogonal
// issues state that interrupts and resumes the normal flow. The transition
// table is static; guarded transitions name the condition they require
// (assigned carrier, proof of delivery, payment confirmation, elapsed
// archival delay). Transitions either apply fully or not at all, and
// completion emits a deferred archival effect for an external scheduler.
package job
