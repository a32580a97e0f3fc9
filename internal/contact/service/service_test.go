package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"softhouse_backend/internal/contact/repository"
	"softhouse_backend/internal/contact/transport"
	"softhouse_backend/platform/apperr"
	"softhouse_backend/platform/validator"

	"github.com/google/uuid"
)

type fakeRepo struct {
	messages []repository.Message
	failNext bool
}

func (f *fakeRepo) Create(_ context.Context, msg *repository.Message) error {
	if f.failNext {
		return apperr.Internal("failed to store contact message", errors.New("boom"))
	}
	f.messages = append(f.messages, *msg)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Message, error) {
	for _, m := range f.messages {
		if m.ID == id {
			return m, nil
		}
	}
	return repository.Message{}, apperr.NotFound("message not found")
}

func (f *fakeRepo) List(_ context.Context, params repository.ListParams) ([]repository.Message, int, error) {
	var out []repository.Message
	for _, m := range f.messages {
		if params.UnreadOnly && m.Read {
			continue
		}
		out = append(out, m)
	}
	return out, len(out), nil
}

func (f *fakeRepo) MarkRead(_ context.Context, id uuid.UUID) (repository.Message, error) {
	for i, m := range f.messages {
		if m.ID == id {
			f.messages[i].Read = true
			return f.messages[i], nil
		}
	}
	return repository.Message{}, apperr.NotFound("message not found")
}

func newService(t *testing.T) (*Service, *fakeRepo) {
	t.Helper()
	repo := &fakeRepo{}
	return New(repo, validator.New()), repo
}

func validRequest() transport.SubmitMessageRequest {
	return transport.SubmitMessageRequest{
		Name:    "João Pereira",
		Email:   "JOAO@Example.com ",
		Subject: "Orçamento para manutenção",
		Message: "Gostaria de conversar sobre a manutenção do nosso sistema interno.",
	}
}

func TestSubmitNormalizesEmail(t *testing.T) {
	svc, repo := newService(t)

	resp, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if resp.Email != "joao@example.com" {
		t.Errorf("email = %q, want lowercased and trimmed", resp.Email)
	}
	if resp.Read {
		t.Error("new message should start unread")
	}
	if len(repo.messages) != 1 {
		t.Fatalf("stored %d messages, want 1", len(repo.messages))
	}
}

func TestSubmitCollectsAllViolations(t *testing.T) {
	svc, _ := newService(t)

	req := transport.SubmitMessageRequest{
		Name:    "x",
		Email:   "not-an-email",
		Message: "too short",
	}
	_, err := svc.Submit(context.Background(), req)
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("kind = %v, want validation", apperr.GetKind(err))
	}

	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("error is not *apperr.Error: %v", err)
	}
	details, ok := appErr.Details.([]apperr.FieldError)
	if !ok {
		t.Fatalf("expected []apperr.FieldError details, got %T", appErr.Details)
	}
	for _, field := range []string{"name", "email", "message"} {
		found := false
		for _, fe := range details {
			if fe.Field == field {
				found = true
			}
		}
		if !found {
			t.Errorf("missing violation for %q in %v", field, details)
		}
	}
}

func TestSubmitSanitizesMessage(t *testing.T) {
	svc, repo := newService(t)

	req := validRequest()
	req.Message = "Preciso de ajuda <script>alert('xss')</script> com o meu site institucional."
	resp, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if strings.Contains(resp.Message, "<script") || strings.Contains(resp.Message, "alert") {
		t.Errorf("message not sanitized: %q", resp.Message)
	}
	if strings.Contains(repo.messages[0].Message, "<script") {
		t.Errorf("stored message not sanitized: %q", repo.messages[0].Message)
	}
}

func TestSubmitPersistenceError(t *testing.T) {
	svc, repo := newService(t)
	repo.failNext = true

	_, err := svc.Submit(context.Background(), validRequest())
	if apperr.GetKind(err) != apperr.KindInternal {
		t.Fatalf("kind = %v, want internal", apperr.GetKind(err))
	}
}

func TestListUnreadFilter(t *testing.T) {
	svc, repo := newService(t)

	now := time.Now()
	read := repository.Message{ID: uuid.New(), Name: "a", Email: "a@example.com", Message: "lida", Read: true, CreatedAt: now}
	unread := repository.Message{ID: uuid.New(), Name: "b", Email: "b@example.com", Message: "pendente", CreatedAt: now}
	repo.messages = []repository.Message{read, unread}

	resp, err := svc.List(context.Background(), transport.ListMessagesRequest{Unread: true})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].ID != unread.ID {
		t.Errorf("unread filter returned %+v", resp.Items)
	}
	if resp.PageSize != defaultPageSize {
		t.Errorf("pageSize = %d, want default %d", resp.PageSize, defaultPageSize)
	}
}

func TestMarkRead(t *testing.T) {
	svc, repo := newService(t)

	msg := repository.Message{ID: uuid.New(), Name: "a", Email: "a@example.com", Message: "pendente"}
	repo.messages = []repository.Message{msg}

	resp, err := svc.MarkRead(context.Background(), msg.ID)
	if err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}
	if !resp.Read {
		t.Error("message should be read after MarkRead")
	}

	if _, err := svc.MarkRead(context.Background(), uuid.New()); apperr.GetKind(err) != apperr.KindNotFound {
		t.Errorf("kind = %v, want not found", apperr.GetKind(err))
	}
}
