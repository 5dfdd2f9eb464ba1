package routes

import (
	"net/http"

	"github.com/arpitsharma-bit/peextrap/internal/contracts"
	"github.com/arpitsharma-bit/peextrap/internal/domain/category"
	appErrors "github.com/arpitsharma-bit/peextrap/internal/errors"
	"github.com/arpitsharma-bit/peextrap/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateCategory(c *gin.Context) {
	var body contracts.CategoryCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	cat := &category.Category{
		UserId: userID,
		Name:   body.Name,
		Color:  body.Color,
		Icon:   body.Icon,
	}

	ctx := c.Request.Context()
	if err := h.CategoryService.CreateCategory(ctx, cat); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.CategoryCreateResponse{
		Message:  "Category created",
		Category: cat,
	})
}

func (h *Handler) ListCategories(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	categories, total, err := h.CategoryService.GetAllCategories(ctx, userID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CategoryListResponse{
		Categories: categories,
		Total:      total,
	})
}

func (h *Handler) GetCategory(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	categoryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has an invalid format"))
		return
	}

	ctx := c.Request.Context()
	cat, err := h.CategoryService.GetCategoryByID(ctx, categoryID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CategorySingleResponse{Category: cat})
}

func (h *Handler) ListCategoryTransactions(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	categoryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has an invalid format"))
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	transactions, total, err := h.TransactionService.GetTransactionsByCategory(ctx, categoryID, userID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := pkg.NewPaginatedResponse(transactions, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, contracts.TransactionListResponse{
		Transactions: resp.Data,
		Page:         resp.Page,
		Limit:        resp.Limit,
		Total:        resp.Total,
		TotalPages:   resp.TotalPages,
	})
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	var body contracts.CategoryUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	categoryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has an invalid format"))
		return
	}

	cat := &category.Category{
		Id:     categoryID,
		UserId: userID,
		Name:   body.Name,
		Color:  body.Color,
		Icon:   body.Icon,
	}

	ctx := c.Request.Context()
	if err := h.CategoryService.UpdateCategory(ctx, cat); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Category updated"})
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	categoryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has an invalid format"))
		return
	}

	ctx := c.Request.Context()
	if err := h.CategoryService.DeleteCategory(ctx, categoryID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Category deleted"})
}
