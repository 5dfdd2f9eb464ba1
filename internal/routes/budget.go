package routes

import (
	"net/http"
	"time"

	"github.com/arpitsharma-bit/peextrap/internal/contracts"
	"github.com/arpitsharma-bit/peextrap/internal/domain/budget"
	appErrors "github.com/arpitsharma-bit/peextrap/internal/errors"
	"github.com/arpitsharma-bit/peextrap/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateBudget(c *gin.Context) {
	var body contracts.BudgetCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	categoryID, err := pkg.ParseULID(body.CategoryId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("category_id", "has an invalid format"))
		return
	}

	b := &budget.Budget{
		UserId:     userID,
		CategoryId: categoryID,
		Amount:     body.Amount,
		Period:     budget.Period(body.Period),
	}

	if body.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", body.StartDate)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("start_date", "must be YYYY-MM-DD"))
			return
		}
		b.StartDate = parsed
	}

	ctx := c.Request.Context()
	if err := h.BudgetService.CreateBudget(ctx, b); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.BudgetCreateResponse{
		Message: "Budget created",
		Budget:  b,
	})
}

func (h *Handler) ListBudgets(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	budgets, total, err := h.BudgetService.GetAllBudgets(ctx, userID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BudgetListResponse{
		Budgets: budgets,
		Total:   total,
	})
}

func (h *Handler) GetBudget(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	budgetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has an invalid format"))
		return
	}

	ctx := c.Request.Context()
	b, err := h.BudgetService.GetBudgetByID(ctx, budgetID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BudgetSingleResponse{Budget: b})
}

func (h *Handler) UpdateBudget(c *gin.Context) {
	var body contracts.BudgetUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	budgetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has an invalid format"))
		return
	}

	b := &budget.Budget{
		Id:     budgetID,
		UserId: userID,
	}
	if body.Amount != nil {
		b.Amount = *body.Amount
	}
	if body.Period != nil {
		b.Period = budget.Period(*body.Period)
	}
	if body.StartDate != nil {
		parsed, err := time.Parse("2006-01-02", *body.StartDate)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("start_date", "must be YYYY-MM-DD"))
			return
		}
		b.StartDate = parsed
	}

	ctx := c.Request.Context()
	if err := h.BudgetService.UpdateBudget(ctx, b); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Budget updated"})
}

func (h *Handler) DeleteBudget(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	budgetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has an invalid format"))
		return
	}

	ctx := c.Request.Context()
	if err := h.BudgetService.DeleteBudget(ctx, budgetID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Budget deleted"})
}
