package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobtrack/internal/service"
)

// JobHandler mantiene dependencias para los endpoints de postulaciones.
type JobHandler struct {
	logger  *zap.Logger
	jobServ *service.JobService
}

// NewJobHandler crea una instancia de JobHandler con sus dependencias.
func NewJobHandler(logger *zap.Logger, jobServ *service.JobService) *JobHandler {
	return &JobHandler{
		logger:  logger,
		jobServ: jobServ,
	}
}

type jobRequest struct {
	Company string `json:"company" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Status  string `json:"status" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Notes   string `json:"notes"`
}

func (r jobRequest) toInput() service.JobInput {
	return service.JobInput{
		Company: r.Company,
		Title:   r.Title,
		Status:  r.Status,
		Date:    r.Date,
		Notes:   r.Notes,
	}
}

// ListJobs maneja GET /jobs.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobServ.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list jobs failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// CreateJob maneja POST /jobs.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create job request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	job, err := h.jobServ.Create(c.Request.Context(), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		default:
			h.logger.Error("create job failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create job"})
			return
		}
	}

	c.JSON(http.StatusCreated, job)
}

// UpdateJob maneja PUT /jobs/:id.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id := c.Param("id")

	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update job request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	job, err := h.jobServ.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
			return
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		default:
			h.logger.Error("update job failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update job"})
			return
		}
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob maneja DELETE /jobs/:id. Borrar un id inexistente responde
// igual que un borrado efectivo.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id := c.Param("id")

	if err := h.jobServ.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("delete job failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete job"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}
