package dto

import "github.com/SscSPs/recon_workbench/internal/core/domain"

// SetActorRequest switches the current actor to the first one holding Role.
type SetActorRequest struct {
	Role domain.Role `json:"role" binding:"required,oneof=maker checker admin"`
}

// ListActorsResponse wraps the known actors.
type ListActorsResponse struct {
	Actors  []domain.Actor `json:"actors"`
	Current *domain.Actor  `json:"current,omitempty"`
}
