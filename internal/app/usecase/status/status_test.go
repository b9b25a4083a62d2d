package status

import (
	"testing"

	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	"github.com/stretchr/testify/assert"
)

func TestStepIndexOrdering(t *testing.T) {
	assert.Greater(t, StepIndex(entity.StatusWashing), StepIndex(entity.StatusConfirmed))
	assert.Greater(t, StepIndex(entity.StatusConfirmed), StepIndex(entity.StatusPending))
	assert.Equal(t, 0, StepIndex(entity.StatusPending))
	assert.Equal(t, len(Steps())-1, StepIndex(entity.StatusDelivered))
}

func TestStepIndexNotFound(t *testing.T) {
	tests := []struct {
		name   string
		status entity.OrderStatus
	}{
		{
			name:   "cancelled is outside the progression",
			status: entity.StatusCancelled,
		},
		{
			name:   "unrecognized status",
			status: entity.OrderStatus("folded"),
		},
		{
			name:   "empty status",
			status: entity.OrderStatus(""),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, StepNotFound, StepIndex(test.status))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(entity.StatusDelivered))
	assert.True(t, IsTerminal(entity.StatusCancelled))
	assert.False(t, IsTerminal(entity.StatusPending))
	assert.False(t, IsTerminal(entity.StatusOutForDelivery))
}

func TestKnown(t *testing.T) {
	for _, step := range Steps() {
		assert.True(t, Known(step.Status))
	}
	assert.True(t, Known(entity.StatusCancelled))
	assert.False(t, Known(entity.OrderStatus("folded")))
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		current entity.OrderStatus
		next    entity.OrderStatus

		want bool
	}{
		{
			name:    "forward step",
			current: entity.StatusPending,
			next:    entity.StatusConfirmed,

			want: true,
		},
		{
			name:    "backward step is allowed",
			current: entity.StatusReady,
			next:    entity.StatusWashing,

			want: true,
		},
		{
			name:    "cancel from any state",
			current: entity.StatusOutForDelivery,
			next:    entity.StatusCancelled,

			want: true,
		},
		{
			name:    "reviving a delivered order is allowed",
			current: entity.StatusDelivered,
			next:    entity.StatusPending,

			want: true,
		},
		{
			name:    "unknown target is rejected",
			current: entity.StatusPending,
			next:    entity.OrderStatus("folded"),

			want: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, CanTransitionTo(test.current, test.next))
		})
	}
}
