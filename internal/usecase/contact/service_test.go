package contact_test

import (
	"context"
	"errors"
	"testing"

	"marketing-cms/internal/domain/entity"
	contactUC "marketing-cms/internal/usecase/contact"
)

type stubRepo struct {
	messages []*entity.ContactMessage
	err      error
}

func (s *stubRepo) Create(_ context.Context, m *entity.ContactMessage) error {
	if s.err != nil {
		return s.err
	}
	m.ID = "msg-1"
	s.messages = append(s.messages, m)
	return nil
}

func (s *stubRepo) List(_ context.Context) ([]*entity.ContactMessage, error) {
	return s.messages, s.err
}

func TestService_Create_validation(t *testing.T) {
	svc := contactUC.Service{Repo: &stubRepo{}}

	tests := []struct {
		name string
		in   contactUC.CreateInput
	}{
		{name: "missing name", in: contactUC.CreateInput{Phone: "555", Message: "hi"}},
		{name: "missing phone", in: contactUC.CreateInput{Name: "a", Message: "hi"}},
		{name: "missing message", in: contactUC.CreateInput{Name: "a", Phone: "555"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Create(context.Background(), tt.in)
			var vErr *entity.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("want ValidationError, got %v", err)
			}
		})
	}
}

func TestService_Create_emailOptional(t *testing.T) {
	stub := &stubRepo{}
	svc := contactUC.Service{Repo: stub}

	err := svc.Create(context.Background(), contactUC.CreateInput{
		Name: "a", Phone: "555", Message: "booking question",
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if len(stub.messages) != 1 {
		t.Fatalf("message not persisted")
	}
	if stub.messages[0].CreatedAt.IsZero() || stub.messages[0].UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set")
	}
}

func TestService_List_storeError(t *testing.T) {
	svc := contactUC.Service{Repo: &stubRepo{err: errors.New("store down")}}

	if _, err := svc.List(context.Background()); err == nil {
		t.Fatalf("want error, got nil")
	}
}
