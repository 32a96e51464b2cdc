package model

import "time"

const (
	// ProjectStatusActive is assigned to every newly created project.
	ProjectStatusActive = "active"
	// RoleOwner is the membership role of the project creator.
	RoleOwner = "owner"
)

// Member is a denormalized project membership record.
type Member struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Role      string  `json:"role"`
}

// Project groups tasks. Tasks is kept for the stored format only and is
// always empty; tasks live in their own collection.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Status      string    `json:"status"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Tasks       []Task    `json:"tasks"`
	Members     []Member  `json:"members"`
}

// ProjectInput carries the caller supplied fields of a new project.
type ProjectInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// ProjectPatch is a partial project update. Nil fields are left unchanged.
type ProjectPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Color       *string   `json:"color,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Members     *[]Member `json:"members,omitempty"`
}

// Apply merges p into project and refreshes UpdatedAt.
func (p ProjectPatch) Apply(project *Project, now time.Time) {
	if p.Title != nil {
		project.Title = *p.Title
	}
	if p.Description != nil {
		project.Description = *p.Description
	}
	if p.Color != nil {
		project.Color = *p.Color
	}
	if p.Status != nil {
		project.Status = *p.Status
	}
	if p.Members != nil {
		project.Members = *p.Members
	}
	project.UpdatedAt = now
}
