package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobtrack/internal/domain"
)

func TestMemoryJobRepository_ListPreservesInsertionOrder(t *testing.T) {
	repo := NewMemoryJobRepository()

	for _, id := range []string{"a", "b", "c"} {
		if err := repo.Create(context.Background(), domain.Job{ID: id, Company: "Acme"}); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	jobs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 3 || jobs[0].ID != "a" || jobs[1].ID != "b" || jobs[2].ID != "c" {
		t.Fatalf("unexpected order: %+v", jobs)
	}
}

func TestMemoryJobRepository_ListReturnsCopy(t *testing.T) {
	repo := NewMemoryJobRepository()
	if err := repo.Create(context.Background(), domain.Job{ID: "a", Company: "Acme"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	jobs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	jobs[0].Company = "mutated"

	again, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if again[0].Company != "Acme" {
		t.Fatalf("store must not observe caller mutations, got %+v", again[0])
	}
}

func TestMemoryJobRepository_UpdatePreservesCreatedAt(t *testing.T) {
	repo := NewMemoryJobRepository()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := repo.Create(context.Background(), domain.Job{ID: "a", Company: "Acme", CreatedAt: created}); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := repo.Update(context.Background(), domain.Job{ID: "a", Company: "Globex"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Company != "Globex" {
		t.Fatalf("fields not replaced: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created) {
		t.Fatalf("created_at must survive update, got %v", updated.CreatedAt)
	}
}

func TestMemoryJobRepository_UpdateMissing(t *testing.T) {
	repo := NewMemoryJobRepository()

	if _, err := repo.Update(context.Background(), domain.Job{ID: "missing"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryJobRepository_DeleteIdempotent(t *testing.T) {
	repo := NewMemoryJobRepository()
	if err := repo.Create(context.Background(), domain.Job{ID: "a"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Delete(context.Background(), "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(context.Background(), "a"); err != nil {
		t.Fatalf("second delete must be a no-op, got %v", err)
	}

	jobs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("expected empty store, got %+v", jobs)
	}
}
