package service

import "context"

// PushNotification is a message for one device token.
type PushNotification struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// NotificationService delivers push notifications. Implementations must
// tolerate a missing provider configuration by becoming a no-op, since
// notifications are best-effort and never fail the triggering operation.
type NotificationService interface {
	Send(ctx context.Context, notification *PushNotification) error
}
