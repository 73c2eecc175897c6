package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/msomdec/board/internal/domain"
	"github.com/msomdec/board/internal/service"
)

func TestQuestionService_Create(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC)
	svc := service.NewQuestionService(db.Questions(), fixedClock(now))
	ctx := context.Background()

	q, err := svc.Create(ctx, "Why is the sky blue?", "Asking for a friend.", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if q.ID == 0 {
		t.Fatal("expected question ID to be set")
	}
	if !q.CreatedAt.Equal(now) {
		t.Fatalf("expected CreatedAt %v, got %v", now, q.CreatedAt)
	}

	got, err := svc.Get(ctx, q.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Subject != "Why is the sky blue?" || got.AuthorID != nil {
		t.Fatalf("unexpected question: %+v", got)
	}
	if !got.CreatedAt.Equal(now) {
		t.Fatalf("expected stored CreatedAt %v, got %v", now, got.CreatedAt)
	}
}

func TestQuestionService_Create_SystemClock(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewQuestionService(db.Questions(), nil)

	before := time.Now().Add(-time.Second)
	q, err := svc.Create(context.Background(), "s", "c", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	after := time.Now().Add(time.Second)

	if q.CreatedAt.Before(before) || q.CreatedAt.After(after) {
		t.Fatalf("CreatedAt %v outside [%v, %v]", q.CreatedAt, before, after)
	}
}

func TestQuestionService_Create_WithAuthor(t *testing.T) {
	db := newTestDB(t)
	users := service.NewUserService(db.Users(), 4, nil)
	svc := service.NewQuestionService(db.Questions(), nil)
	ctx := context.Background()

	alice, err := users.Register(ctx, "alice", "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	q, err := svc.Create(ctx, "s", "c", &alice.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if q.AuthorID == nil || *q.AuthorID != alice.ID {
		t.Fatalf("expected author %d, got %v", alice.ID, q.AuthorID)
	}
}

func TestQuestionService_Create_Invalid(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewQuestionService(db.Questions(), nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		subject string
		content string
	}{
		{"empty subject", "", "content"},
		{"empty content", "subject", ""},
		{"subject too long", strings.Repeat("x", 201), "content"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.subject, tc.content, nil)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	n, err := db.Questions().Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected nothing stored, got %d", n)
	}
}

func TestQuestionService_Create_UnknownAuthor(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewQuestionService(db.Questions(), nil)

	missing := int64(99)
	_, err := svc.Create(context.Background(), "s", "c", &missing)
	if !errors.Is(err, domain.ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got %v", err)
	}
}

func TestQuestionService_Create_ThreeHundred(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewQuestionService(db.Questions(), nil)
	ctx := context.Background()

	for i := 1; i <= 300; i++ {
		if _, err := svc.Create(ctx, fmt.Sprintf("test-data:[%03d]", i), "no content", nil); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	all, err := db.Questions().FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 300 {
		t.Fatalf("expected 300 questions, got %d", len(all))
	}
	seen := make(map[int64]bool, len(all))
	for i, q := range all {
		if want := fmt.Sprintf("test-data:[%03d]", i+1); q.Subject != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, q.Subject)
		}
		if q.Content != "no content" || q.AuthorID != nil {
			t.Fatalf("position %d: unexpected question %+v", i, q)
		}
		if seen[q.ID] {
			t.Fatalf("duplicate id %d", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestQuestionService_List(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewQuestionService(db.Questions(), nil)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		if _, err := svc.Create(ctx, fmt.Sprintf("q%d", i), "c", nil); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	res, err := svc.List(ctx, domain.Page{Limit: 2, Offset: 3})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if res.Total != 5 || len(res.Items) != 2 {
		t.Fatalf("expected 2 of 5, got %d of %d", len(res.Items), res.Total)
	}
	if res.Items[0].Subject != "q4" {
		t.Fatalf("expected q4 first, got %q", res.Items[0].Subject)
	}
}

func TestQuestionService_Get_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewQuestionService(db.Questions(), nil)

	if _, err := svc.Get(context.Background(), 12345); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
