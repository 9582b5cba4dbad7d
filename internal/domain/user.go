package domain

// Role enumerates the kinds of accounts in the users table.
type Role string

const (
	RolePilgrim  Role = "pilgrim"
	RoleWorker   Role = "worker"
	RoleOfficial Role = "official"
)

// User is the domain model for pilgrims, workers and officials.
// Pilgrims are created through registration; workers and officials are
// pre-seeded rows.
type User struct {
	UserID       string
	Name         string
	PhoneNumber  string
	PasswordHash string
	Role         Role
}

// WorkerRef is the minimal roster projection shown on the official
// dashboard.
type WorkerRef struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
}
