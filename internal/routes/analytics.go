package routes

import (
	"net/http"
	"time"

	appErrors "github.com/arpitsharma-bit/peextrap/internal/errors"
	"github.com/arpitsharma-bit/peextrap/internal/pkg"

	"github.com/gin-gonic/gin"
)

// monthYearFromQuery reads the optional month/year query parameters,
// defaulting to the current calendar month.
func monthYearFromQuery(c *gin.Context) (time.Month, int, error) {
	now := time.Now()
	month := now.Month()
	year := now.Year()

	if m := c.Query("month"); m != "" {
		parsed, err := pkg.ParseInt(m)
		if err != nil || parsed < 1 || parsed > 12 {
			return 0, 0, appErrors.NewValidationError("month", "must be between 1 and 12")
		}
		month = time.Month(parsed)
	}

	if y := c.Query("year"); y != "" {
		parsed, err := pkg.ParseInt(y)
		if err != nil || parsed < 2000 || parsed > 2100 {
			return 0, 0, appErrors.NewValidationError("year", "must be between 2000 and 2100")
		}
		year = parsed
	}

	return month, year, nil
}

func (h *Handler) GetDashboard(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	month, year, err := monthYearFromQuery(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	dashboard, err := h.AnalyticsService.GetDashboard(ctx, userID, month, year)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *Handler) GetAnalytics(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	month, year, err := monthYearFromQuery(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	report, err := h.AnalyticsService.GetReport(ctx, userID, month, year)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
