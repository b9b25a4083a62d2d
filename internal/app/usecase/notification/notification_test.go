package notification

import (
	"testing"
	"time"

	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = entity.UserID("00308dff-b6b1-4f1b-8515-d09d3db49951")

func TestPushGeneratesDistinctIDs(t *testing.T) {
	center := NewCenter(0)

	first := center.Push(testUserID, entity.NotificationSuccess, "Added to Cart", "Wash & Fold added to your cart")
	second := center.Push(testUserID, entity.NotificationSuccess, "Added to Cart", "Wash & Fold added to your cart")

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, center.List(testUserID), 2)
}

func TestRemoveDeletesExactlyOne(t *testing.T) {
	center := NewCenter(0)

	first := center.Push(testUserID, entity.NotificationInfo, "Order Placed", "Your order has been received")
	second := center.Push(testUserID, entity.NotificationInfo, "Order Placed", "Your order has been received")

	center.Remove(testUserID, first.ID)

	listed := center.List(testUserID)
	require.Len(t, listed, 1)
	assert.Equal(t, second.ID, listed[0].ID)
}

func TestRemoveAbsentIDIsNoOp(t *testing.T) {
	center := NewCenter(0)

	center.Push(testUserID, entity.NotificationWarning, "Heads up", "pickup tomorrow")
	center.Remove(testUserID, "missing")

	assert.Len(t, center.List(testUserID), 1)
}

func TestOrderOfInsertionPreserved(t *testing.T) {
	center := NewCenter(0)

	center.Push(testUserID, entity.NotificationInfo, "first", "")
	center.Push(testUserID, entity.NotificationInfo, "second", "")
	center.Push(testUserID, entity.NotificationInfo, "third", "")

	listed := center.List(testUserID)
	require.Len(t, listed, 3)
	assert.Equal(t, "first", listed[0].Title)
	assert.Equal(t, "second", listed[1].Title)
	assert.Equal(t, "third", listed[2].Title)
}

func TestAutoDismiss(t *testing.T) {
	center := NewCenter(20 * time.Millisecond)

	center.Push(testUserID, entity.NotificationSuccess, "Added to Cart", "")

	require.Len(t, center.List(testUserID), 1)

	assert.Eventually(t, func() bool {
		return len(center.List(testUserID)) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestManualRemoveCancelsTimer(t *testing.T) {
	center := NewCenter(20 * time.Millisecond)

	kept := center.Push(testUserID, entity.NotificationSuccess, "kept", "")
	dismissed := center.Push(testUserID, entity.NotificationSuccess, "dismissed", "")

	center.Remove(testUserID, dismissed.ID)

	listed := center.List(testUserID)
	require.Len(t, listed, 1)
	assert.Equal(t, kept.ID, listed[0].ID)
}
