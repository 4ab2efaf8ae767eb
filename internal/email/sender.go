package email

import (
	"context"
	"errors"
	"time"
)

// Sender define la interfaz para notificaciones de contacto por correo.
type Sender interface {
	SendContactNotification(ctx context.Context, toEmail, fromName, fromEmail, message string, receivedAt time.Time) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendContactNotification(_ context.Context, _, _, _, _ string, _ time.Time) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
