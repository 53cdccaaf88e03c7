package job_test

import (
	"fmt"
	"testing"

	"freight/internal/core/domain/model/job"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(job.Unknown))
		assert.Equal(t, 1, int(job.Booked))
		assert.Equal(t, 2, int(job.Allocated))
		assert.Equal(t, 3, int(job.InProgress))
		assert.Equal(t, 4, int(job.Finished))
		assert.Equal(t, 5, int(job.Invoiced))
		assert.Equal(t, 6, int(job.Cleared))
		assert.Equal(t, 7, int(job.Completed))
		assert.Equal(t, 8, int(job.Archived))
		assert.Equal(t, 9, int(job.Issues))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []job.Status{
			job.Booked,
			job.Allocated,
			job.InProgress,
			job.Finished,
			job.Invoiced,
			job.Cleared,
			job.Completed,
			job.Archived,
			job.Issues,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := job.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should reject out-of-range status values", func(t *testing.T) {
		for _, status := range []job.Status{job.Status(-1), job.Status(10), job.Status(100)} {
			err := status.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return lowercase names", func(t *testing.T) {
		assert.Equal(t, "booked", job.Booked.String())
		assert.Equal(t, "in-progress", job.InProgress.String())
		assert.Equal(t, "archived", job.Archived.String())
		assert.Equal(t, "issues", job.Issues.String())
	})

	t.Run("should return unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "unknown", job.Status(42).String())
		assert.Equal(t, "unknown", job.Unknown.String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip every valid status", func(t *testing.T) {
		validStatuses := []job.Status{
			job.Booked, job.Allocated, job.InProgress, job.Finished,
			job.Invoiced, job.Cleared, job.Completed, job.Archived, job.Issues,
		}

		for _, status := range validStatuses {
			parsed, err := job.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := job.StatusFromString("delivered")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, job.Archived.IsTerminal())

	for _, status := range []job.Status{
		job.Booked, job.Allocated, job.InProgress, job.Finished,
		job.Invoiced, job.Cleared, job.Completed, job.Issues,
	} {
		assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
	}
}

func TestStatus_ValidateCanHaveCarrier(t *testing.T) {
	t.Run("booked jobs must not have a carrier", func(t *testing.T) {
		require.NoError(t, job.Booked.ValidateCanHaveCarrier(false))
		require.Error(t, job.Booked.ValidateCanHaveCarrier(true))
	})

	t.Run("allocated and later jobs must have a carrier", func(t *testing.T) {
		for _, status := range []job.Status{
			job.Allocated, job.InProgress, job.Finished,
			job.Invoiced, job.Cleared, job.Completed, job.Archived,
		} {
			require.NoError(t, status.ValidateCanHaveCarrier(true), "%s with carrier", status)
			require.Error(t, status.ValidateCanHaveCarrier(false), "%s without carrier", status)
		}
	})

	t.Run("issues accepts both because it inherits from the interrupted state", func(t *testing.T) {
		require.NoError(t, job.Issues.ValidateCanHaveCarrier(true))
		require.NoError(t, job.Issues.ValidateCanHaveCarrier(false))
	})
}

func TestTransitions_Table(t *testing.T) {
	t.Run("should expose the main chain in order", func(t *testing.T) {
		table := job.Transitions()

		require.Len(t, table, 7)
		assert.Equal(t, job.Booked, table[0].From)
		assert.Equal(t, job.Allocated, table[0].To)
		assert.Equal(t, job.Completed, table[6].From)
		assert.Equal(t, job.Archived, table[6].To)
	})

	t.Run("guarded rows name their preconditions", func(t *testing.T) {
		table := job.Transitions()

		preconditions := map[job.Status]job.Precondition{}
		for _, row := range table {
			preconditions[row.To] = row.Precondition
		}

		assert.Equal(t, job.PreconditionCarrierAssigned, preconditions[job.Allocated])
		assert.Equal(t, job.PreconditionProofOfDelivery, preconditions[job.Invoiced])
		assert.Equal(t, job.PreconditionPaymentConfirmed, preconditions[job.Cleared])
		assert.Equal(t, job.PreconditionArchiveDue, preconditions[job.Archived])
		assert.Equal(t, job.PreconditionNone, preconditions[job.InProgress])
	})

	t.Run("mutating the returned table does not affect the state machine", func(t *testing.T) {
		table := job.Transitions()
		table[0].To = job.Archived

		fresh := job.Transitions()
		assert.Equal(t, job.Allocated, fresh[0].To)
	})
}
