package converter

import (
	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	"github.com/laundrypro/go-laundry-service/internal/app/model"
)

func ConvertNotificationsToResponses(notifications entity.Notifications) model.NotificationsResponse {
	responses := make(model.NotificationsResponse, 0, len(notifications))
	for _, notification := range notifications {
		responses = append(responses, model.NotificationResponse{
			ID:      notification.ID.String(),
			Type:    string(notification.Type),
			Title:   notification.Title,
			Message: notification.Message,
		})
	}

	return responses
}
