package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-service/internal/api/http/handlers"
	apperrors "github.com/spec-kit/complaint-service/pkg/util"
)

// Action names form the dispatch contract: a single endpoint with an
// `action` query discriminator, matched exhaustively.
const (
	actionRegisterPilgrim      = "register_pilgrim"
	actionLogin                = "login"
	actionFileComplaint        = "file_complaint"
	actionGetPilgrimStatus     = "get_pilgrim_status"
	actionGetOfficialDashboard = "get_official_dashboard"
	actionAssignTask           = "assign_task"
	actionGetWorkerTasks       = "get_worker_tasks"
	actionCompleteTask         = "complete_task"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Identity   *handlers.IdentityHandler
	Complaints *handlers.ComplaintsHandler
	Dashboard  *handlers.DashboardHandler
}

// RegisterRoutes wires HTTP routes. Reads arrive as GET, writes as
// POST with a JSON body; the action always travels in the query
// string.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/api", cfg.dispatch)
	app.Post("/api", cfg.dispatch)
}

func (cfg RouteConfig) dispatch(c *fiber.Ctx) error {
	switch c.Query("action") {
	case actionRegisterPilgrim:
		return cfg.Identity.Register(c)
	case actionLogin:
		return cfg.Identity.Login(c)
	case actionFileComplaint:
		return cfg.Complaints.File(c)
	case actionGetPilgrimStatus:
		return cfg.Dashboard.PilgrimStatus(c)
	case actionGetOfficialDashboard:
		return cfg.Dashboard.OfficialDashboard(c)
	case actionAssignTask:
		return cfg.Complaints.Assign(c)
	case actionGetWorkerTasks:
		return cfg.Dashboard.WorkerTasks(c)
	case actionCompleteTask:
		return cfg.Complaints.Complete(c)
	default:
		return apperrors.NewValidationError("Invalid API action.", nil)
	}
}
