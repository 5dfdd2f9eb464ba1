package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arpitsharma-bit/peextrap/internal/domain/user"
	appErrors "github.com/arpitsharma-bit/peextrap/internal/errors"
	"github.com/arpitsharma-bit/peextrap/internal/logger"
	"github.com/arpitsharma-bit/peextrap/internal/pkg"
	"github.com/arpitsharma-bit/peextrap/internal/pkg/currency"
	"github.com/arpitsharma-bit/peextrap/internal/pkg/imaging"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

const MaxAvatarBytes = 5 << 20

const defaultCountry = "United States"

type Service struct {
	Repository  Repository
	UserService *user.Service
	Storage     ObjectStorage
}

func NewService(repo Repository, userService *user.Service, storage ObjectStorage) *Service {
	return &Service{
		Repository:  repo,
		UserService: userService,
		Storage:     storage,
	}
}

// GetProfile loads the user's profile, materializing a default one if
// the user never saved preferences.
func (s *Service) GetProfile(ctx context.Context, userID ulid.ULID) (*Profile, error) {
	usr, err := s.UserService.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, err
	}

	prof, err := s.Repository.GetByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.createDefault(ctx, usr)
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	if prof.DisplayName == "" {
		prof.DisplayName = usr.Name
	}
	return prof, nil
}

// CreateDefault seeds the initial profile at registration. The currency
// comes from the timezone the client reported.
func (s *Service) CreateDefault(ctx context.Context, userID ulid.ULID, name, timezone string) (*Profile, error) {
	prof := &Profile{
		Id:          pkg.GenerateULIDObject(),
		UserId:      userID,
		DisplayName: name,
		Currency:    currency.DetectFromTimezone(timezone),
		Country:     defaultCountry,
		IconColor:   imaging.DefaultIconBackground,
	}
	now := pkg.SetTimestamps()
	prof.CreatedAt = now
	prof.UpdatedAt = now

	if err := s.Repository.Upsert(ctx, prof); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return prof, nil
}

type UpdateInput struct {
	DisplayName *string
	Currency    *string
	Country     *string
	IconColor   *string
}

func (s *Service) UpdateProfile(ctx context.Context, userID ulid.ULID, input UpdateInput) (*Profile, error) {
	prof, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		name := strings.TrimSpace(*input.DisplayName)
		if name == "" {
			return nil, appErrors.NewValidationError("displayName", "cannot be empty")
		}
		prof.DisplayName = name
	}

	if input.Currency != nil {
		code := strings.ToUpper(strings.TrimSpace(*input.Currency))
		if currency.ByCode(code).Code != code {
			return nil, appErrors.NewValidationError("currency", "is not supported")
		}
		prof.Currency = code
	}

	if input.Country != nil {
		country := strings.TrimSpace(*input.Country)
		if country == "" {
			return nil, appErrors.NewValidationError("country", "cannot be empty")
		}
		prof.Country = country
	}

	if input.IconColor != nil {
		prof.IconColor = *input.IconColor
	}

	prof.UpdatedAt = pkg.SetTimestamps()

	if err := s.Repository.Upsert(ctx, prof); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return prof, nil
}

// UploadAvatar crops the image to a circle and stores it under a name
// derived from the user and the upload time. The previous avatar is
// removed best-effort.
func (s *Service) UploadAvatar(ctx context.Context, userID ulid.ULID, data []byte) (*Profile, error) {
	if len(data) == 0 {
		return nil, appErrors.NewValidationError("avatar", "file is empty")
	}
	if len(data) > MaxAvatarBytes {
		return nil, appErrors.NewValidationError("avatar", "file exceeds the 5MB limit")
	}

	prof, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	cropped, err := imaging.CropToCircle(data)
	if err != nil {
		return nil, appErrors.NewValidationError("avatar", "file is not a valid image")
	}

	// Cropping always re-encodes to PNG regardless of the upload format.
	filename := fmt.Sprintf("profile-%s-%d.png", userID.String(), time.Now().UnixMilli())

	url, err := s.Storage.Save(ctx, filename, cropped)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	if prof.AvatarURL != "" {
		if old := filenameFromURL(prof.AvatarURL); old != "" {
			if err := s.Storage.Remove(ctx, old); err != nil {
				logger.Warn().Err(err).Str("filename", old).Msg("failed to remove previous avatar")
			}
		}
	}

	prof.AvatarURL = url
	prof.UpdatedAt = pkg.SetTimestamps()

	if err := s.Repository.Upsert(ctx, prof); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return prof, nil
}

// Favicon renders a 32x32 initials icon for the user, used by the
// browser tab when no avatar is set.
func (s *Service) Favicon(ctx context.Context, userID ulid.ULID) ([]byte, error) {
	prof, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	color := prof.IconColor
	if color == "" {
		color = imaging.DefaultIconBackground
	}

	icon, err := imaging.InitialsIcon(Initials(prof.DisplayName), color)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return icon, nil
}

// Initials extracts up to two initials from a display name.
func Initials(name string) string {
	fields := strings.Fields(strings.TrimSpace(name))
	switch len(fields) {
	case 0:
		return "?"
	case 1:
		r := []rune(fields[0])
		return strings.ToUpper(string(r[0]))
	default:
		first := []rune(fields[0])
		last := []rune(fields[len(fields)-1])
		return strings.ToUpper(string(first[0]) + string(last[0]))
	}
}

func (s *Service) createDefault(ctx context.Context, usr *user.User) (*Profile, error) {
	return s.CreateDefault(ctx, usr.Id, usr.Name, "")
}

func filenameFromURL(url string) string {
	idx := strings.LastIndex(url, "/")
	if idx < 0 || idx == len(url)-1 {
		return ""
	}
	return url[idx+1:]
}
