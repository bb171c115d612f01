package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/JTSTBP/ATS-sub003/internal/api/dto"
	"github.com/JTSTBP/ATS-sub003/internal/auth"
	"github.com/JTSTBP/ATS-sub003/internal/domain"
	"github.com/JTSTBP/ATS-sub003/internal/service"
)

// JobsHandler exposes client and job requisition endpoints.
type JobsHandler struct {
	jobs *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService) *JobsHandler {
	return &JobsHandler{jobs: jobService}
}

// CreateClient handles POST /clients.
func (h *JobsHandler) CreateClient(c *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	client, err := h.jobs.CreateClient(c.Context(), req.Name, req.ContactEmail)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": toClientResponse(client)})
}

// ListClients handles GET /clients.
func (h *JobsHandler) ListClients(c *fiber.Ctx) error {
	clients, err := h.jobs.ListClients(c.Context())
	if err != nil {
		return err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, toClientResponse(&clients[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Create handles POST /jobs.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Title == "" || req.ClientID == "" {
		return fiber.NewError(http.StatusBadRequest, "title and client_id required")
	}

	job, err := h.jobs.CreateJob(c.Context(), principal.User, service.JobCreateInput{
		Title:    req.Title,
		ClientID: req.ClientID,
		Stages:   req.Stages,
		Openings: req.Openings,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": toJobResponse(job)})
}

// List handles GET /jobs.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	jobs, err := h.jobs.ListJobs(c.Context(), principal.User, c.Query("status"))
	if err != nil {
		return err
	}
	out := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, toJobResponse(&jobs[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Get handles GET /jobs/:id.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	job, err := h.jobs.GetJob(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": toJobResponse(job)})
}

// UpdateStatus handles PATCH /jobs/:id/status.
func (h *JobsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.UpdateJobStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	job, err := h.jobs.UpdateStatus(c.Context(), principal.User, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": toJobResponse(job)})
}

// Assign handles PUT /jobs/:id/assignment.
func (h *JobsHandler) Assign(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.AssignJobRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	job, err := h.jobs.Assign(c.Context(), principal.User, c.Params("id"), req.LeadRecruiterID, req.AssignedRecruiterIDs)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": toJobResponse(job)})
}

func toJobResponse(job *domain.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:                   job.ID,
		Title:                job.Title,
		ClientID:             job.ClientID,
		CreatedBy:            job.CreatedBy,
		LeadRecruiterID:      job.LeadRecruiterID,
		AssignedRecruiterIDs: job.AssignedRecruiterIDs,
		Status:               job.Status,
		Stages:               job.Stages,
		Openings:             job.Openings,
		CreatedAt:            job.CreatedAt,
		UpdatedAt:            job.UpdatedAt,
	}
}

func toClientResponse(client *domain.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:           client.ID,
		Name:         client.Name,
		ContactEmail: client.ContactEmail,
		Active:       client.Active,
		CreatedAt:    client.CreatedAt,
	}
}
