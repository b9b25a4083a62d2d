package model

type NotificationsResponse []NotificationResponse

type NotificationResponse struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}
