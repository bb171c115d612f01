package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/JTSTBP/ATS-sub003/internal/api/dto"
	"github.com/JTSTBP/ATS-sub003/internal/auth"
	"github.com/JTSTBP/ATS-sub003/internal/service"
)

// ReportsHandler exposes the scoped dashboard endpoint.
type ReportsHandler struct {
	reports *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportService *service.ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reportService}
}

// Dashboard handles GET /reports/dashboard.
func (h *ReportsHandler) Dashboard(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	dashboard, err := h.reports.BuildDashboard(c.Context(), principal.User)
	if err != nil {
		return err
	}

	jobs := make([]dto.JobReportResponse, 0, len(dashboard.Jobs))
	for _, report := range dashboard.Jobs {
		jobs = append(jobs, dto.JobReportResponse{
			JobID:           report.Job.ID,
			Title:           report.Job.Title,
			Status:          string(report.Job.Status),
			TotalCandidates: report.Funnel.TotalCandidates,
			ActivePipeline:  report.Funnel.ActivePipeline,
			Hired:           report.Funnel.Hired,
			FillRatio:       report.FillRatio,
		})
	}

	return c.JSON(fiber.Map{"data": dto.DashboardResponse{
		TotalCandidates: dashboard.Candidates.Total,
		ByStatus:        dashboard.Candidates.ByStatus,
		Leaves: dto.LeaveTotalsResponse{
			Total:    dashboard.Leaves.Total,
			ByStatus: dashboard.Leaves.ByStatus,
		},
		Jobs: jobs,
	}})
}
