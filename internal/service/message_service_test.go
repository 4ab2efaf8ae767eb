package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"portfolio-api/internal/domain"
)

type mockMessageRepo struct {
	messages map[string]domain.Message
}

func newMockMessageRepo() *mockMessageRepo {
	return &mockMessageRepo{messages: make(map[string]domain.Message)}
}

func (m *mockMessageRepo) Create(_ context.Context, message domain.Message) error {
	m.messages[message.ID] = message
	return nil
}

func (m *mockMessageRepo) List(_ context.Context) ([]domain.Message, error) {
	var out []domain.Message
	for _, msg := range m.messages {
		out = append(out, msg)
	}
	return out, nil
}

func (m *mockMessageRepo) ListUnread(_ context.Context) ([]domain.Message, error) {
	var out []domain.Message
	for _, msg := range m.messages {
		if !msg.Read {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (m *mockMessageRepo) MarkRead(_ context.Context, id string) error {
	msg, ok := m.messages[id]
	if !ok {
		return pgx.ErrNoRows
	}
	msg.Read = true
	m.messages[id] = msg
	return nil
}

func (m *mockMessageRepo) Delete(_ context.Context, id string) error {
	delete(m.messages, id)
	return nil
}

type mockSender struct {
	sent []string
	err  error
}

func (m *mockSender) SendContactNotification(_ context.Context, toEmail, fromName, _, _ string, _ time.Time) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, toEmail+"|"+fromName)
	return nil
}

func TestMessageSubmit_StoresAndNotifies(t *testing.T) {
	repo := newMockMessageRepo()
	sender := &mockSender{}
	svc := NewMessageService(zap.NewNop(), repo, sender, NewRateLimiter(time.Minute, 3), "owner@site.com")

	msg, err := svc.Submit(context.Background(), "  Jane ", "JANE@Example.com", " Hello there ")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if msg.Name != "Jane" || msg.Email != "jane@example.com" || msg.Message != "Hello there" {
		t.Fatalf("expected trimmed and normalized fields, got %+v", msg)
	}
	if msg.Read {
		t.Fatalf("new message should be unread")
	}
	if _, ok := repo.messages[msg.ID]; !ok {
		t.Fatalf("expected message persisted")
	}
	if len(sender.sent) != 1 || sender.sent[0] != "owner@site.com|Jane" {
		t.Fatalf("expected one notification, got %v", sender.sent)
	}
}

func TestMessageSubmit_Validation(t *testing.T) {
	svc := NewMessageService(zap.NewNop(), newMockMessageRepo(), &mockSender{}, NewRateLimiter(time.Minute, 3), "owner@site.com")
	ctx := context.Background()

	cases := []struct {
		name, email, body string
	}{
		{"", "a@b.com", "hi"},
		{"Jane", "", "hi"},
		{"Jane", "a@b.com", "  "},
	}
	for _, tc := range cases {
		if _, err := svc.Submit(ctx, tc.name, tc.email, tc.body); !errors.Is(err, ErrInvalidMessage) {
			t.Fatalf("expected ErrInvalidMessage for %+v, got %v", tc, err)
		}
	}
}

func TestMessageSubmit_RateLimited(t *testing.T) {
	repo := newMockMessageRepo()
	svc := NewMessageService(zap.NewNop(), repo, &mockSender{}, NewRateLimiter(time.Minute, 1), "owner@site.com")
	ctx := context.Background()

	if _, err := svc.Submit(ctx, "Jane", "a@b.com", "first"); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if _, err := svc.Submit(ctx, "Jane", "a@b.com", "second"); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if len(repo.messages) != 1 {
		t.Fatalf("rate-limited message must not be stored, got %d", len(repo.messages))
	}
}

func TestMessageSubmit_NotificationFailureIsBestEffort(t *testing.T) {
	repo := newMockMessageRepo()
	sender := &mockSender{err: errors.New("smtp down")}
	svc := NewMessageService(zap.NewNop(), repo, sender, NewRateLimiter(time.Minute, 3), "owner@site.com")

	msg, err := svc.Submit(context.Background(), "Jane", "a@b.com", "hello")
	if err != nil {
		t.Fatalf("submit should succeed even when notification fails: %v", err)
	}
	if _, ok := repo.messages[msg.ID]; !ok {
		t.Fatalf("expected message persisted despite smtp failure")
	}
}
