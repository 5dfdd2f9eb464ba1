package contracts

import (
	"github.com/arpitsharma-bit/peextrap/internal/domain/profile"
	"github.com/arpitsharma-bit/peextrap/internal/pkg/currency"
)

type ProfileUpdateRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,max=100"`
	Currency    *string `json:"currency" binding:"omitempty,len=3"`
	Country     *string `json:"country" binding:"omitempty,max=100"`
	IconColor   *string `json:"icon_color" binding:"omitempty,hexcolor"`
}

type ProfileResponse struct {
	Profile *profile.Profile `json:"profile"`
}

type AvatarUploadResponse struct {
	Message   string `json:"message"`
	AvatarURL string `json:"avatarUrl"`
}

type CurrencyListResponse struct {
	Currencies []currency.Currency `json:"currencies"`
}
