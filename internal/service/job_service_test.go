package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"jobtrack/internal/repository"
)

func newJobService() *JobService {
	return NewJobService(zap.NewNop(), repository.NewMemoryJobRepository())
}

func validInput() JobInput {
	return JobInput{
		Company: "Acme",
		Title:   "Engineer",
		Status:  "Applied",
		Date:    "2024-01-01",
	}
}

func TestJobService_CreateAndList(t *testing.T) {
	svc := newJobService()

	job, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if job.ID == "" {
		t.Fatalf("expected generated id")
	}

	jobs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != job.ID {
		t.Fatalf("expected exactly the created job, got %+v", jobs)
	}
}

func TestJobService_CreateRejectsUnknownStatus(t *testing.T) {
	svc := newJobService()

	input := validInput()
	input.Status = "Ghosted"
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	jobs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("expected empty store after rejected create, got %+v", jobs)
	}
}

func TestJobService_CreateRejectsMissingFields(t *testing.T) {
	svc := newJobService()

	input := validInput()
	input.Company = "  "
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobService_UpdateReplacesFields(t *testing.T) {
	svc := newJobService()

	job, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	input := validInput()
	input.Status = "Offer"
	input.Notes = "signing bonus"
	updated, err := svc.Update(context.Background(), job.ID, input)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != job.ID {
		t.Fatalf("id must not change, got %q", updated.ID)
	}
	if updated.Status != "Offer" || updated.Notes != "signing bonus" {
		t.Fatalf("unexpected updated job: %+v", updated)
	}

	jobs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Status != "Offer" {
		t.Fatalf("update not visible in list: %+v", jobs)
	}
}

func TestJobService_UpdateMissingLeavesStoreUnchanged(t *testing.T) {
	svc := newJobService()

	job, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(context.Background(), "missing-id", validInput()); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}

	jobs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != job.ID || jobs[0].Status != "Applied" {
		t.Fatalf("store changed after failed update: %+v", jobs)
	}
}

func TestJobService_DeleteMissingIsNoop(t *testing.T) {
	svc := newJobService()

	if err := svc.Delete(context.Background(), "missing-id"); err != nil {
		t.Fatalf("expected no-op delete, got %v", err)
	}
}

func TestJobService_CreateThenDeleteNetEffect(t *testing.T) {
	svc := newJobService()

	job, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(context.Background(), job.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	jobs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("expected empty list after create-then-delete, got %+v", jobs)
	}
}
