package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate runs struct-tag validation on a request payload.
func Validate(v any) error {
	return validate.Struct(v)
}

// RegisterPilgrimRequest payload for action=register_pilgrim.
type RegisterPilgrimRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest payload for action=login. Username carries the phone
// number for pilgrims and the user ID for workers and officials. No
// required tags: empty credentials fall through to the same
// unauthorized response a failed lookup produces.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// FileComplaintRequest payload for action=file_complaint. Type is
// accepted but never branched on.
type FileComplaintRequest struct {
	QRCode      string  `json:"qr_code" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Contact     *string `json:"contact"`
	Type        string  `json:"type"`
}

// AssignTaskRequest payload for action=assign_task. OfficialID is
// accepted but not persisted.
type AssignTaskRequest struct {
	ComplaintID string `json:"complaint_id" validate:"required"`
	WorkerID    string `json:"worker_id" validate:"required"`
	OfficialID  string `json:"official_id"`
}

// CompleteTaskRequest payload for action=complete_task.
type CompleteTaskRequest struct {
	ComplaintID   string `json:"complaint_id" validate:"required"`
	Notes         string `json:"notes" validate:"required"`
	PhotoFilename string `json:"photo_filename"`
}
