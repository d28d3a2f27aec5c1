package repository

import (
	"context"
	"sync"

	"jobtrack/internal/domain"
)

// JobRepository define el contrato de almacenamiento para postulaciones.
type JobRepository interface {
	List(ctx context.Context) ([]domain.Job, error)
	Create(ctx context.Context, job domain.Job) error
	Update(ctx context.Context, job domain.Job) (domain.Job, error)
	Delete(ctx context.Context, id string) error
}

// MemoryJobRepository implementa JobRepository sobre un slice en memoria,
// preservando el orden de inserción. Cada mutación se aplica completa bajo
// el lock, nunca queda visible un registro parcial.
type MemoryJobRepository struct {
	mu   sync.RWMutex
	jobs []domain.Job
}

func NewMemoryJobRepository() *MemoryJobRepository {
	return &MemoryJobRepository{}
}

// List devuelve una copia de todos los registros en orden de inserción.
func (r *MemoryJobRepository) List(_ context.Context) ([]domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Job, len(r.jobs))
	copy(out, r.jobs)
	return out, nil
}

func (r *MemoryJobRepository) Create(_ context.Context, job domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, job)
	return nil
}

// Update reemplaza los campos del registro que coincide por id,
// conservando id y fecha de creación.
func (r *MemoryJobRepository) Update(_ context.Context, job domain.Job) (domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.jobs {
		if r.jobs[i].ID == job.ID {
			job.CreatedAt = r.jobs[i].CreatedAt
			r.jobs[i] = job
			return job, nil
		}
	}
	return domain.Job{}, ErrNotFound
}

// Delete elimina el registro por id. Borrar un id inexistente no es error.
func (r *MemoryJobRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.jobs[:0]
	for _, job := range r.jobs {
		if job.ID != id {
			kept = append(kept, job)
		}
	}
	r.jobs = kept
	return nil
}
