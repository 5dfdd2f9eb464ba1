package routes

import (
	"io"
	"net/http"

	"github.com/arpitsharma-bit/peextrap/internal/contracts"
	"github.com/arpitsharma-bit/peextrap/internal/domain/profile"
	appErrors "github.com/arpitsharma-bit/peextrap/internal/errors"
	"github.com/arpitsharma-bit/peextrap/internal/pkg/currency"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetProfile(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	prof, err := h.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ProfileResponse{Profile: prof})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var body contracts.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	prof, err := h.ProfileService.UpdateProfile(ctx, userID, profile.UpdateInput{
		DisplayName: body.DisplayName,
		Currency:    body.Currency,
		Country:     body.Country,
		IconColor:   body.IconColor,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ProfileResponse{Profile: prof})
}

func (h *Handler) UploadAvatar(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("avatar", "file is required"))
		return
	}

	if fileHeader.Size > profile.MaxAvatarBytes {
		h.respondError(c, appErrors.NewValidationError("avatar", "file exceeds the 5MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, profile.MaxAvatarBytes+1))
	if err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	prof, err := h.ProfileService.UploadAvatar(ctx, userID, data)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AvatarUploadResponse{
		Message:   "Avatar updated",
		AvatarURL: prof.AvatarURL,
	})
}

func (h *Handler) GetFavicon(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	icon, err := h.ProfileService.Favicon(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", icon)
}

func (h *Handler) ListCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, contracts.CurrencyListResponse{Currencies: currency.Supported()})
}
