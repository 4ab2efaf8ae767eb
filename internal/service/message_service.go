package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/email"
	"portfolio-api/internal/repository"
)

// MessageService recibe mensajes del formulario de contacto, aplica rate
// limiting por remitente y notifica al dueño del sitio por correo.
type MessageService struct {
	logger   *zap.Logger
	messages repository.MessageRepository
	sender   email.Sender
	limiter  RateLimiter
	notifyTo string
}

var (
	ErrRateLimited    = errors.New("rate limited")
	ErrInvalidMessage = errors.New("invalid message")
)

const contactWindow = 10 * time.Minute

func NewMessageService(logger *zap.Logger, messages repository.MessageRepository, sender email.Sender, limiter RateLimiter, notifyTo string) *MessageService {
	if limiter == nil {
		limiter = NewRateLimiter(contactWindow, 3)
	}
	return &MessageService{
		logger:   logger,
		messages: messages,
		sender:   sender,
		limiter:  limiter,
		notifyTo: strings.TrimSpace(notifyTo),
	}
}

// Submit guarda un mensaje entrante. La notificacion por correo es best
// effort: si falla, el mensaje ya quedo persistido.
func (s *MessageService) Submit(ctx context.Context, name, emailAddr, body string) (domain.Message, error) {
	name = strings.TrimSpace(name)
	emailAddr = normalizeEmail(emailAddr)
	body = strings.TrimSpace(body)
	if name == "" || emailAddr == "" || body == "" {
		return domain.Message{}, ErrInvalidMessage
	}
	if s.limiter != nil && !s.limiter.Allow(emailAddr) {
		return domain.Message{}, ErrRateLimited
	}

	msg := domain.Message{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     emailAddr,
		Message:   body,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return domain.Message{}, err
	}

	if s.sender != nil && s.notifyTo != "" {
		if err := s.sender.SendContactNotification(ctx, s.notifyTo, msg.Name, msg.Email, msg.Message, msg.CreatedAt); err != nil {
			if s.logger != nil {
				s.logger.Warn("contact notification failed", zap.Error(err), zap.String("message_id", msg.ID))
			}
		}
	}
	return msg, nil
}
