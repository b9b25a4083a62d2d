package entity

type NotificationID string

func (id NotificationID) String() string {
	return string(id)
}

type NotificationType string

const (
	NotificationSuccess NotificationType = `success`
	NotificationError   NotificationType = `error`
	NotificationWarning NotificationType = `warning`
	NotificationInfo    NotificationType = `info`
)

type Notifications []Notification

type Notification struct {
	ID      NotificationID
	Type    NotificationType
	Title   string
	Message string
}
