package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jobtrack/internal/domain"
	"jobtrack/internal/repository"
)

// JobService coordina reglas de negocio para postulaciones.
type JobService struct {
	logger *zap.Logger
	jobs   repository.JobRepository
}

var (
	ErrJobNotFound   = errors.New("job not found")
	ErrInvalidStatus = errors.New("invalid status")
)

func NewJobService(logger *zap.Logger, jobs repository.JobRepository) *JobService {
	return &JobService{
		logger: logger,
		jobs:   jobs,
	}
}

// JobInput son los campos editables de una postulación.
type JobInput struct {
	Company string
	Title   string
	Status  string
	Date    string
	Notes   string
}

func (in JobInput) normalize() (JobInput, error) {
	in.Company = strings.TrimSpace(in.Company)
	in.Title = strings.TrimSpace(in.Title)
	in.Status = strings.TrimSpace(in.Status)
	in.Date = strings.TrimSpace(in.Date)
	in.Notes = strings.TrimSpace(in.Notes)
	if in.Company == "" || in.Title == "" || in.Status == "" || in.Date == "" {
		return JobInput{}, ErrInvalidInput
	}
	if !domain.JobStatus(in.Status).IsValid() {
		return JobInput{}, ErrInvalidStatus
	}
	return in, nil
}

// List devuelve todas las postulaciones en orden de inserción.
func (s *JobService) List(ctx context.Context) ([]domain.Job, error) {
	if s.jobs == nil {
		return nil, errors.New("job service not configured")
	}
	return s.jobs.List(ctx)
}

// Create genera un id nuevo y agrega la postulación al final.
func (s *JobService) Create(ctx context.Context, input JobInput) (domain.Job, error) {
	if s.jobs == nil {
		return domain.Job{}, errors.New("job service not configured")
	}

	input, err := input.normalize()
	if err != nil {
		return domain.Job{}, err
	}

	job := domain.Job{
		ID:        uuid.NewString(),
		Company:   input.Company,
		Title:     input.Title,
		Status:    domain.JobStatus(input.Status),
		Date:      input.Date,
		Notes:     input.Notes,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return domain.Job{}, err
	}
	if s.logger != nil {
		s.logger.Info("job created", zap.String("id", job.ID), zap.String("company", job.Company))
	}
	return job, nil
}

// Update reemplaza todos los campos de la postulación, conservando el id.
func (s *JobService) Update(ctx context.Context, id string, input JobInput) (domain.Job, error) {
	if s.jobs == nil {
		return domain.Job{}, errors.New("job service not configured")
	}

	input, err := input.normalize()
	if err != nil {
		return domain.Job{}, err
	}

	job := domain.Job{
		ID:      id,
		Company: input.Company,
		Title:   input.Title,
		Status:  domain.JobStatus(input.Status),
		Date:    input.Date,
		Notes:   input.Notes,
	}

	updated, err := s.jobs.Update(ctx, job)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Job{}, ErrJobNotFound
		}
		return domain.Job{}, err
	}
	return updated, nil
}

// Delete elimina la postulación por id. Es idempotente: borrar un id
// inexistente no es error.
func (s *JobService) Delete(ctx context.Context, id string) error {
	if s.jobs == nil {
		return errors.New("job service not configured")
	}
	return s.jobs.Delete(ctx, id)
}
