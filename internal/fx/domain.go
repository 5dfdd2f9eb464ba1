package fx

import (
	"github.com/arpitsharma-bit/peextrap/config"
	"github.com/arpitsharma-bit/peextrap/internal/domain/analytics"
	"github.com/arpitsharma-bit/peextrap/internal/domain/auth"
	"github.com/arpitsharma-bit/peextrap/internal/domain/budget"
	"github.com/arpitsharma-bit/peextrap/internal/domain/category"
	"github.com/arpitsharma-bit/peextrap/internal/domain/profile"
	"github.com/arpitsharma-bit/peextrap/internal/domain/transaction"
	"github.com/arpitsharma-bit/peextrap/internal/domain/user"
	"github.com/arpitsharma-bit/peextrap/internal/infrastructure"
	"github.com/arpitsharma-bit/peextrap/internal/logger"

	"go.uber.org/fx"
)

var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,
		newCategoryService,
		newProfileService,
		newGoogleClientID,
		newAuthService,
		newTransactionService,
		newBudgetService,
		newAnalyticsService,
	),
)

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
}

func newCategoryService(
	repo *infrastructure.CategoryRepository,
	userSvc *user.Service,
	txRepo *infrastructure.TransactionRepository,
) *category.Service {
	return category.NewService(repo, userSvc, txRepo)
}

func newProfileService(
	repo *infrastructure.ProfileRepository,
	userSvc *user.Service,
	storage *infrastructure.LocalStorage,
) *profile.Service {
	return profile.NewService(repo, userSvc, storage)
}

func newGoogleClientID(cfg *config.Config) string {
	googleClientID := ""
	if cfg.GoogleOAuth.Enabled {
		if cfg.GoogleOAuth.ClientID == "" {
			logger.Warn().
				Msg("GOOGLE_OAUTH_ENABLED=true but GOOGLE_OAUTH_CLIENT_ID is empty. Check the .env file")
		} else {
			googleClientID = cfg.GoogleOAuth.ClientID
			logger.Info().
				Int("client_id_length", len(googleClientID)).
				Msg("Google OAuth enabled")
		}
	} else {
		logger.Info().Msg("Google OAuth disabled (GOOGLE_OAUTH_ENABLED is not 'true')")
	}
	return googleClientID
}

func newAuthService(
	repo *infrastructure.UserRepository,
	userSvc *user.Service,
	categorySvc *category.Service,
	profileSvc *profile.Service,
	googleClientID string,
) *auth.Service {
	return auth.NewService(repo, userSvc, categorySvc, profileSvc, googleClientID)
}

func newTransactionService(
	repo *infrastructure.TransactionRepository,
	categorySvc *category.Service,
	userSvc *user.Service,
) *transaction.Service {
	return transaction.NewService(repo, categorySvc, userSvc)
}

func newBudgetService(
	repo *infrastructure.BudgetRepository,
	categorySvc *category.Service,
	userSvc *user.Service,
) *budget.Service {
	return budget.NewService(repo, categorySvc, userSvc)
}

func newAnalyticsService(
	transactionSvc *transaction.Service,
	categorySvc *category.Service,
	budgetSvc *budget.Service,
) *analytics.Service {
	return analytics.NewService(transactionSvc, categorySvc, budgetSvc)
}
