package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-service/internal/api/dto"
	"github.com/spec-kit/complaint-service/internal/service"
)

// DashboardHandler exposes the read-only projection actions.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboardService}
}

// PilgrimStatus handles action=get_pilgrim_status.
func (h *DashboardHandler) PilgrimStatus(c *fiber.Ctx) error {
	complaints, err := h.dashboard.PilgrimStatus(c.UserContext(), c.Query("contact"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":     "success",
		"complaints": dto.NewPilgrimComplaintViews(complaints),
	})
}

// OfficialDashboard handles action=get_official_dashboard.
func (h *DashboardHandler) OfficialDashboard(c *fiber.Ctx) error {
	complaints, workers, err := h.dashboard.OfficialDashboard(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":     "success",
		"complaints": dto.NewDashboardComplaintViews(complaints),
		"workers":    dto.WorkerViews(workers),
	})
}

// WorkerTasks handles action=get_worker_tasks.
func (h *DashboardHandler) WorkerTasks(c *fiber.Ctx) error {
	tasks, err := h.dashboard.WorkerTasks(c.UserContext(), c.Query("worker_id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"tasks":  dto.NewWorkerTaskViews(tasks),
	})
}
