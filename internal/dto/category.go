package dto

import "voice-ledger/internal/models"

// CreateCategoryRequest is the payload for adding a spending category.
// Unknown icon tags are normalized to the default glyph rather than rejected.
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Icon  string `json:"icon" validate:"omitempty,max=50"`
	Color string `json:"color" validate:"omitempty,max=50"`
}

// UpdateCategoryRequest is the payload for editing a category; a name change
// cascades into every referencing expense record
type UpdateCategoryRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Icon  string `json:"icon" validate:"omitempty,max=50"`
	Color string `json:"color" validate:"omitempty,max=50"`
}

// ListCategoriesResponse is the full registry in insertion order
type ListCategoriesResponse struct {
	Categories []models.Category `json:"categories"`
	Total      int               `json:"total"`
}
