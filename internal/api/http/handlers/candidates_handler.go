package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/JTSTBP/ATS-sub003/internal/api/dto"
	"github.com/JTSTBP/ATS-sub003/internal/auth"
	"github.com/JTSTBP/ATS-sub003/internal/domain"
	"github.com/JTSTBP/ATS-sub003/internal/service"
	"github.com/JTSTBP/ATS-sub003/internal/visibility"
)

// CandidatesHandler exposes candidate intake, listing and funnel endpoints.
type CandidatesHandler struct {
	candidates *service.CandidateService
}

// NewCandidatesHandler constructs handler.
func NewCandidatesHandler(candidateService *service.CandidateService) *CandidatesHandler {
	return &CandidatesHandler{candidates: candidateService}
}

// Create handles POST /candidates.
func (h *CandidatesHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.CreateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.JobID == "" || req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "job_id and name required")
	}

	cand, err := h.candidates.CreateCandidate(c.Context(), principal.User, service.CandidateCreateInput{
		JobID:  req.JobID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Skills: req.Skills,
		Fields: req.Fields,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": toCandidateResponse(cand)})
}

// List handles GET /candidates. Filters arrive as query parameters; empty
// or "all" values pass everything through.
func (h *CandidatesHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	criteria := visibility.CandidateCriteria{
		Status:   c.Query("status"),
		Client:   c.Query("client"),
		JobTitle: c.Query("job_title"),
		Stage:    c.Query("stage"),
		Search:   c.Query("q"),
	}

	candidates, err := h.candidates.ListCandidates(c.Context(), principal.User, criteria)
	if err != nil {
		return err
	}
	out := make([]dto.CandidateResponse, 0, len(candidates))
	for i := range candidates {
		out = append(out, toCandidateResponse(&candidates[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Get handles GET /candidates/:id.
func (h *CandidatesHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	cand, err := h.candidates.GetCandidate(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": toCandidateResponse(cand)})
}

// UpdateStatus handles PATCH /candidates/:id/status.
func (h *CandidatesHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.UpdateCandidateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Status == "" {
		return fiber.NewError(http.StatusBadRequest, "status required")
	}

	cand, err := h.candidates.UpdateStatus(c.Context(), principal.User, c.Params("id"), req.Status, req.Stage)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": toCandidateResponse(cand)})
}

// StageOptions handles GET /candidates/stage-options. It returns the stage
// list of the job named by the job_title query parameter.
func (h *CandidatesHandler) StageOptions(c *fiber.Ctx) error {
	stages, err := h.candidates.StageOptions(c.Context(), c.Query("job_title"))
	if err != nil {
		return err
	}
	if stages == nil {
		stages = []string{}
	}
	return c.JSON(fiber.Map{"data": stages})
}

func toCandidateResponse(cand *domain.Candidate) dto.CandidateResponse {
	return dto.CandidateResponse{
		ID:        cand.ID,
		JobID:     cand.JobID,
		CreatedBy: cand.CreatedBy,
		Name:      cand.Name,
		Email:     cand.Email,
		Phone:     cand.Phone,
		Skills:    cand.Skills,
		Status:    cand.Status,
		Stage:     cand.Stage,
		Fields:    cand.Fields,
		CreatedAt: cand.CreatedAt,
		UpdatedAt: cand.UpdatedAt,
	}
}
