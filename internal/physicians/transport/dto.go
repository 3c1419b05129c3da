package transport

import "github.com/google/uuid"

// CreatePhysicianRequest contains data for creating a new physician.
type CreatePhysicianRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=200"`
	Specialty *string `json:"specialty,omitempty" validate:"omitempty,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=200"`
	Address   *string `json:"address,omitempty" validate:"omitempty,max=500"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// UpdatePhysicianRequest contains data for updating an existing physician.
type UpdatePhysicianRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Specialty *string `json:"specialty,omitempty" validate:"omitempty,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=200"`
	Address   *string `json:"address,omitempty" validate:"omitempty,max=500"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// PhysicianResponse represents a physician in API responses.
type PhysicianResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Specialty *string   `json:"specialty,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Address   *string   `json:"address,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

// PhysicianListResponse wraps a list of physicians.
type PhysicianListResponse struct {
	Items []PhysicianResponse `json:"items"`
	Total int                 `json:"total"`
}
