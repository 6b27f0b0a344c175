package dto

import "autoworld/internal/domain"

// DropRequest represents a part dropped on a slot
// @Description Request body for a drag-and-drop
type DropRequest struct {
	PartID string `json:"part_id" validate:"required,slug"`
	Slot   string `json:"slot" validate:"required,slug"`
}

// DropResponse carries the drop result and the builder as it now looks.
type DropResponse struct {
	Outcome domain.DropOutcome `json:"outcome"`
	Builder domain.BuilderView `json:"builder"`
}
