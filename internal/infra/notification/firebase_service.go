// Package notification delivers push notifications through Firebase Cloud
// Messaging. When Firebase is not configured the service degrades to a no-op,
// because pushes are best-effort and must never fail a ledger operation.
package notification

import (
	"context"
	"log/slog"

	"arbolitos/config"
	"arbolitos/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// noopService is used when Firebase credentials are absent.
type noopService struct {
	logger *slog.Logger
}

func (s *noopService) Send(_ context.Context, notification *service.PushNotification) error {
	s.logger.Debug("Firebase not configured, skipping push notification",
		slog.String("title", notification.Title),
	)

	return nil
}

// Params holds dependencies for the notification service, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates the notification service. Without a credentials path it returns
// the no-op variant.
func New(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, using no-op notification service")

		return &noopService{logger: params.Logger}, nil
	}

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(params.Ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

// Send delivers a push notification to a single device token.
func (s *firebaseService) Send(ctx context.Context, notification *service.PushNotification) error {
	if notification.Token == "" {
		return nil
	}

	message := &messaging.Message{
		Token: notification.Token,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
		Data: notification.Data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}
