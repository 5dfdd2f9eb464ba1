package auth

import (
	"context"

	"github.com/arpitsharma-bit/peextrap/internal/domain/category"
	"github.com/arpitsharma-bit/peextrap/internal/domain/profile"
	"github.com/arpitsharma-bit/peextrap/internal/domain/user"
	appErrors "github.com/arpitsharma-bit/peextrap/internal/errors"
	"github.com/arpitsharma-bit/peextrap/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

type Login struct {
	Email    string
	Password string
}

type Service struct {
	Repository      user.Repository
	UserService     *user.Service
	CategoryService *category.Service
	ProfileService  *profile.Service
	GoogleClientID  string
}

func NewService(
	repo user.Repository,
	userSvc *user.Service,
	categorySvc *category.Service,
	profileSvc *profile.Service,
	googleClientID string,
) *Service {
	return &Service{
		Repository:      repo,
		UserService:     userSvc,
		CategoryService: categorySvc,
		ProfileService:  profileSvc,
		GoogleClientID:  googleClientID,
	}
}

func (s *Service) Login(ctx context.Context, login Login) (*user.User, error) {
	entity, err := s.Repository.GetByEmail(ctx, login.Email)
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok && appErr.Code == appErrors.ErrUserNotFound.Code {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := PasswordValidate(login.Password, entity.Password); err != nil {
		return nil, err
	}
	return entity, nil
}

// Register creates the account and seeds the starter data every new
// user gets: the default category set and a profile whose currency is
// guessed from the client's timezone. Seeding failures are logged but
// do not fail the registration.
func (s *Service) Register(ctx context.Context, newUser *user.User, timezone string) error {
	exists, err := s.emailExists(ctx, newUser.Email)
	if err != nil {
		return err
	}
	if exists {
		return appErrors.ErrEmailAlreadyExists
	}
	if err := PasswordRequirements(newUser.Password); err != nil {
		return err
	}
	if err := s.UserService.Create(ctx, newUser); err != nil {
		return err
	}

	s.seedUserData(ctx, newUser, timezone)

	return nil
}

func (s *Service) GoogleLogin(ctx context.Context, credential string) (*user.User, error) {
	if s.GoogleClientID == "" {
		return nil, appErrors.NewAuthError("OAUTH_NOT_CONFIGURED", "Google OAuth is not configured. Set GOOGLE_OAUTH_CLIENT_ID and GOOGLE_OAUTH_ENABLED=true")
	}

	if credential == "" {
		return nil, appErrors.NewAuthError("CREDENTIAL_MISSING", "Google credential is required")
	}

	payload, err := idtoken.Validate(ctx, credential, s.GoogleClientID)
	if err != nil {
		return nil, appErrors.NewAuthError("TOKEN_INVALID", "Google token is invalid").WithError(err)
	}

	email, ok := payload.Claims["email"].(string)
	if !ok || email == "" {
		return nil, appErrors.NewAuthError("EMAIL_MISSING", "Email not present in Google token")
	}

	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name = "Google User"
	}

	entity, err := s.Repository.GetByEmail(ctx, email)
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok && appErr.Code == appErrors.ErrUserNotFound.Code {
			password, err := generateSecurePassword()
			if err != nil {
				return nil, err
			}

			newUser := user.User{
				Name:     name,
				Email:    email,
				Password: password,
			}

			if err := s.UserService.Create(ctx, &newUser); err != nil {
				return nil, err
			}

			s.seedUserData(ctx, &newUser, "")

			return &newUser, nil
		}
		return nil, err
	}

	return entity, nil
}

func (s *Service) seedUserData(ctx context.Context, newUser *user.User, timezone string) {
	if err := s.CategoryService.SeedDefaults(ctx, newUser.Id); err != nil {
		logger.Error().Err(err).Str("user_id", newUser.Id.String()).Msg("failed to seed default categories")
	}
	if _, err := s.ProfileService.CreateDefault(ctx, newUser.Id, newUser.Name, timezone); err != nil {
		logger.Error().Err(err).Str("user_id", newUser.Id.String()).Msg("failed to create initial profile")
	}
}

func (s *Service) emailExists(ctx context.Context, email string) (bool, error) {
	_, err := s.Repository.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		return false, appErrors.ErrInternalServer.WithError(err)
	}
	if appErr.Code == appErrors.ErrUserNotFound.Code {
		return false, nil
	}
	return false, appErr
}

func PasswordRequirements(password string) error {
	return user.ValidatePasswordRequirements(password)
}

func PasswordValidate(inputPassword string, storedPassword string) error {
	if inputPassword == "" {
		return appErrors.NewValidationError("password", "is required")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedPassword), []byte(inputPassword)); err != nil {
		return appErrors.ErrInvalidCredentials
	}
	return nil
}

func PasswordHashing(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return string(hash), nil
}
