package domain

import "time"

// Роли пользователей. Пустая строка — роль не назначена (обычный покупатель).
const (
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email" validate:"required,email"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateRoleRequest — тело PUT /users/{id}.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}
