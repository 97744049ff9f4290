package handlers

import (
	"net/http"
	"strconv"

	"voice-ledger/internal/dto"
	"voice-ledger/internal/errors"
	"voice-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category registry HTTP requests
type CategoryHandler struct {
	registry services.RegistryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(registry services.RegistryServiceInterface) *CategoryHandler {
	return &CategoryHandler{registry: registry}
}

// ListCategories returns the registry in insertion order
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories := h.registry.Categories()
	return c.JSON(http.StatusOK, dto.ListCategoriesResponse{
		Categories: categories,
		Total:      len(categories),
	})
}

// CreateCategory appends a new category to the registry
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.registry.AddCategory(req.Name, req.Icon, req.Color)
	if err != nil {
		if err == services.ErrCategoryNameRequired {
			return SendError(c, errors.CategoryNameRequired)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    category,
		Message: "Category created",
	})
}

// UpdateCategory edits a category; a name change cascades into the ledger
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.registry.UpdateCategory(id, req.Name, req.Icon, req.Color)
	if err != nil {
		switch err {
		case services.ErrCategoryNotFound:
			return SendError(c, errors.CategoryNotFound)
		case services.ErrCategoryNameRequired:
			return SendError(c, errors.CategoryNameRequired)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    category,
		Message: "Category updated",
	})
}

// DeleteCategory removes a category; fails closed while expenses reference it
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	if err := h.registry.RemoveCategory(id); err != nil {
		switch err {
		case services.ErrCategoryNotFound:
			return SendError(c, errors.CategoryNotFound)
		case services.ErrCategoryInUse:
			return SendError(c, errors.CategoryInUse)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Category deleted"})
}
