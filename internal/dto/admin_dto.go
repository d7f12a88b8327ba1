package dto

import "time"

// AdminUserDTO lists a user for moderation, credential excluded.
type AdminUserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
