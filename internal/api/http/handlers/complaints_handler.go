package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-service/internal/api/dto"
	"github.com/spec-kit/complaint-service/internal/service"
	apperrors "github.com/spec-kit/complaint-service/pkg/util"
)

// ComplaintsHandler exposes the complaint lifecycle actions.
type ComplaintsHandler struct {
	complaints *service.ComplaintService
}

// NewComplaintsHandler constructs handler.
func NewComplaintsHandler(complaintService *service.ComplaintService) *ComplaintsHandler {
	return &ComplaintsHandler{complaints: complaintService}
}

// File handles action=file_complaint.
func (h *ComplaintsHandler) File(c *fiber.Ctx) error {
	var req dto.FileComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid JSON input.", nil)
	}
	if err := dto.Validate(&req); err != nil {
		return apperrors.NewValidationError("Location and description are required.", nil)
	}

	complaint, err := h.complaints.FileComplaint(c.UserContext(), service.FileComplaintInput{
		LocationQR:  req.QRCode,
		Description: req.Description,
		Contact:     req.Contact,
		Type:        req.Type,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":       "success",
		"message":      "Complaint filed successfully.",
		"complaint_id": complaint.ComplaintID,
	})
}

// Assign handles action=assign_task.
func (h *ComplaintsHandler) Assign(c *fiber.Ctx) error {
	var req dto.AssignTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid JSON input.", nil)
	}
	if err := dto.Validate(&req); err != nil {
		return apperrors.NewValidationError("Complaint ID and Worker ID are required.", nil)
	}

	if err := h.complaints.AssignTask(c.UserContext(), req.ComplaintID, req.WorkerID, req.OfficialID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": fmt.Sprintf("Task assigned successfully to %s.", req.WorkerID),
	})
}

// Complete handles action=complete_task.
func (h *ComplaintsHandler) Complete(c *fiber.Ctx) error {
	var req dto.CompleteTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid JSON input.", nil)
	}
	if err := dto.Validate(&req); err != nil {
		return apperrors.NewValidationError("Complaint ID and completion notes are required.", nil)
	}

	if _, err := h.complaints.CompleteTask(c.UserContext(), req.ComplaintID, req.Notes, req.PhotoFilename); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": fmt.Sprintf("Task %s marked completed.", req.ComplaintID),
	})
}
