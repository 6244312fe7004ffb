package domain

import "context"

// Notification kinds
const (
	NotificationKindApplication = "application"
	NotificationKindStatus      = "status"
)

// Notification is the fire-and-forget event handed to the sink. Delivery
// failures never affect the state change that produced the event.
type Notification struct {
	TargetUserID string `json:"target_user_id"`
	Title        string `json:"title"`
	Message      string `json:"message"`
	Kind         string `json:"kind"`
	RelatedID    int64  `json:"related_id"`
}

// NotificationPublisher hands notifications to the external sink.
type NotificationPublisher interface {
	Publish(ctx context.Context, n Notification) error
}
