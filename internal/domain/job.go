package domain

import "time"

// JobStatus es el estado de una postulación.
type JobStatus string

const (
	StatusApplied      JobStatus = "Applied"
	StatusInterviewing JobStatus = "Interviewing"
	StatusRejected     JobStatus = "Rejected"
	StatusOffer        JobStatus = "Offer"
)

// IsValid indica si el estado es uno de los valores conocidos.
func (s JobStatus) IsValid() bool {
	switch s {
	case StatusApplied, StatusInterviewing, StatusRejected, StatusOffer:
		return true
	}
	return false
}

type Job struct {
	ID        string    `json:"id"`
	Company   string    `json:"company"`
	Title     string    `json:"title"`
	Status    JobStatus `json:"status"`
	Date      string    `json:"date"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
