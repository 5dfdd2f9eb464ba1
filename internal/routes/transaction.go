package routes

import (
	"net/http"
	"time"

	"github.com/arpitsharma-bit/peextrap/internal/contracts"
	"github.com/arpitsharma-bit/peextrap/internal/domain/transaction"
	appErrors "github.com/arpitsharma-bit/peextrap/internal/errors"
	"github.com/arpitsharma-bit/peextrap/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateTransaction(c *gin.Context) {
	var body contracts.TransactionCreateRequest
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

	date, err := body.ParseDate()
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("date", "must be YYYY-MM-DD"))
		return
	}

	tx := &transaction.Transaction{
		UserId:      userID,
		CategoryId:  categoryID,
		Type:        transaction.Types(body.Type),
		Amount:      body.Amount,
		Description: body.Description,
		Date:        date,
		Tags:        body.Tags,
	}

	ctx := c.Request.Context()
	if err := h.TransactionService.CreateTransaction(ctx, tx); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TransactionCreateResponse{
		Message:     "Transaction recorded",
		Transaction: tx,
	})
}

func (h *Handler) ListTransactions(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filters := &transaction.Filters{}
	if t := c.Query("type"); t != "" {
		typ := transaction.Types(t)
		filters.Type = &typ
	}
	if cat := c.Query("category_id"); cat != "" {
		categoryID, err := pkg.ParseULID(cat)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("category_id", "has an invalid format"))
			return
		}
		filters.CategoryID = &categoryID
	}
	if from := c.Query("from"); from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("from", "must be YYYY-MM-DD"))
			return
		}
		filters.From = &parsed
	}
	if to := c.Query("to"); to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("to", "must be YYYY-MM-DD"))
			return
		}
		filters.To = &parsed
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	transactions, total, err := h.TransactionService.GetAllTransactions(ctx, userID, filters, pagination)
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

func (h *Handler) GetTransaction(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has an invalid format"))
		return
	}

	ctx := c.Request.Context()
	tx, err := h.TransactionService.GetTransactionByID(ctx, transactionID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionSingleResponse{Transaction: tx})
}

func (h *Handler) DeleteTransaction(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has an invalid format"))
		return
	}

	ctx := c.Request.Context()
	if err := h.TransactionService.DeleteTransaction(ctx, transactionID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Transaction deleted"})
}
