package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/laundrypro/go-laundry-service/internal/app/entity"
)

// Center accumulates ephemeral user-facing messages per session. Every push
// gets a fresh id, so identical messages stay distinct entries. When ttl is
// positive each entry schedules its own dismissal timer; removing the entry
// cancels the timer, so a removal never races a late auto-dismiss.
type Center struct {
	mu     sync.Mutex
	queues map[entity.UserID]entity.Notifications
	timers map[entity.NotificationID]*time.Timer
	ttl    time.Duration
}

func NewCenter(ttl time.Duration) *Center {
	return &Center{
		queues: make(map[entity.UserID]entity.Notifications),
		timers: make(map[entity.NotificationID]*time.Timer),
		ttl:    ttl,
	}
}

func (c *Center) Push(userID entity.UserID, nType entity.NotificationType, title, message string) entity.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	notification := entity.Notification{
		ID:      entity.NotificationID(uuid.New().String()),
		Type:    nType,
		Title:   title,
		Message: message,
	}

	c.queues[userID] = append(c.queues[userID], notification)

	if c.ttl > 0 {
		id := notification.ID
		c.timers[id] = time.AfterFunc(c.ttl, func() {
			c.Remove(userID, id)
		})
	}

	return notification
}

// Remove deletes exactly one entry. Removing an absent id is a no-op.
func (c *Center) Remove(userID entity.UserID, id entity.NotificationID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if timer, ok := c.timers[id]; ok {
		timer.Stop()
		delete(c.timers, id)
	}

	queue := c.queues[userID]
	for i, notification := range queue {
		if notification.ID == id {
			c.queues[userID] = append(queue[:i:i], queue[i+1:]...)
			return
		}
	}
}

func (c *Center) List(userID entity.UserID) entity.Notifications {
	c.mu.Lock()
	defer c.mu.Unlock()

	queue := c.queues[userID]
	listed := make(entity.Notifications, len(queue))
	copy(listed, queue)

	return listed
}
