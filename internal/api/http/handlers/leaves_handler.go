package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/JTSTBP/ATS-sub003/internal/api/dto"
	"github.com/JTSTBP/ATS-sub003/internal/auth"
	"github.com/JTSTBP/ATS-sub003/internal/domain"
	"github.com/JTSTBP/ATS-sub003/internal/service"
	"github.com/JTSTBP/ATS-sub003/internal/visibility"
)

const leaveDateLayout = "2006-01-02"

// LeavesHandler exposes leave request endpoints.
type LeavesHandler struct {
	leaves *service.LeaveService
}

// NewLeavesHandler constructs handler.
func NewLeavesHandler(leaveService *service.LeaveService) *LeavesHandler {
	return &LeavesHandler{leaves: leaveService}
}

// Create handles POST /leaves.
func (h *LeavesHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.CreateLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	from, err := time.Parse(leaveDateLayout, req.FromDate)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "from_date must be YYYY-MM-DD")
	}
	to, err := time.Parse(leaveDateLayout, req.ToDate)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "to_date must be YYYY-MM-DD")
	}

	leave, err := h.leaves.RequestLeave(c.Context(), principal.User, service.LeaveCreateInput{
		FromDate: from,
		ToDate:   to,
		Category: req.Category,
		Reason:   req.Reason,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": toLeaveResponse(leave)})
}

// List handles GET /leaves.
func (h *LeavesHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	criteria := visibility.LeaveCriteria{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Search:   c.Query("q"),
	}

	leaves, err := h.leaves.ListLeaves(c.Context(), principal.User, criteria)
	if err != nil {
		return err
	}
	out := make([]dto.LeaveResponse, 0, len(leaves))
	for i := range leaves {
		out = append(out, toLeaveResponse(&leaves[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Decide handles POST /leaves/:id/decision.
func (h *LeavesHandler) Decide(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.DecideLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	leave, err := h.leaves.Decide(c.Context(), principal.User, c.Params("id"), req.Approve)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": toLeaveResponse(leave)})
}

func toLeaveResponse(leave *domain.LeaveRequest) dto.LeaveResponse {
	return dto.LeaveResponse{
		ID:        leave.ID,
		UserID:    leave.UserID,
		Status:    leave.Status,
		FromDate:  leave.FromDate,
		ToDate:    leave.ToDate,
		Category:  leave.Category,
		Reason:    leave.Reason,
		DecidedBy: leave.DecidedBy,
		CreatedAt: leave.CreatedAt,
	}
}
