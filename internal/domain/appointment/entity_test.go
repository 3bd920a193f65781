//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/appointment"
	"slotbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppointment(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewAppointmentBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "First visit, please call ahead", actual.Message())
		assert.Nil(t, actual.Completed())
	})

	t.Run("truncates scheduled time to the minute", func(t *testing.T) {
		at := time.Date(2025, time.March, 10, 10, 0, 42, 999, time.UTC)
		actual, err := builder.NewAppointmentBuilder().WithScheduledAt(at).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC), actual.ScheduledAt())
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.AppointmentBuilder)
			errIs  error
		}{
			{
				name:   "zero scheduled time",
				mutate: func(b *builder.AppointmentBuilder) { b.ScheduledAt = time.Time{} },
				errIs:  appointment.ErrDateRequired,
			},
			{
				name:   "empty message",
				mutate: func(b *builder.AppointmentBuilder) { b.Message = "" },
				errIs:  appointment.ErrMessageRequired,
			},
			{
				name:   "whitespace message",
				mutate: func(b *builder.AppointmentBuilder) { b.Message = "   " },
				errIs:  appointment.ErrMessageRequired,
			},
			{
				name:   "missing requester",
				mutate: func(b *builder.AppointmentBuilder) { b.RequesterID = uuid.Nil },
				errIs:  appointment.ErrEmptyRequester,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := builder.NewAppointmentBuilder().With(tc.mutate).BuildDomain()
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestClassifyValues(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	boolPtr := func(v bool) *bool { return &v }

	cases := []struct {
		name        string
		scheduledAt time.Time
		completed   *bool
		expected    appointment.Status
	}{
		{
			name:        "future appointment is pending",
			scheduledAt: now.Add(2 * time.Hour),
			expected:    appointment.StatusPending,
		},
		{
			name:        "past appointment is completed",
			scheduledAt: now.Add(-2 * time.Hour),
			expected:    appointment.StatusCompleted,
		},
		{
			name:        "explicit completed overrides a future time",
			scheduledAt: now.Add(2 * time.Hour),
			completed:   boolPtr(true),
			expected:    appointment.StatusCompleted,
		},
		{
			name:        "explicit pending overrides a past time",
			scheduledAt: now.Add(-2 * time.Hour),
			completed:   boolPtr(false),
			expected:    appointment.StatusPending,
		},
		{
			name:        "exactly now is still pending",
			scheduledAt: now,
			expected:    appointment.StatusPending,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, appointment.ClassifyValues(tc.scheduledAt, tc.completed, now))
		})
	}
}

func TestStatusCounts(t *testing.T) {
	var counts appointment.StatusCounts
	counts.Add(appointment.StatusPending)
	counts.Add(appointment.StatusCompleted)
	counts.Add(appointment.StatusCompleted)

	assert.Equal(t, 3, counts.Total)
	assert.Equal(t, 1, counts.Pending)
	assert.Equal(t, 2, counts.Completed)
}
