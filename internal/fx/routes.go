package fx

import (
	"time"

	"github.com/arpitsharma-bit/peextrap/internal/domain/analytics"
	"github.com/arpitsharma-bit/peextrap/internal/domain/auth"
	"github.com/arpitsharma-bit/peextrap/internal/domain/budget"
	"github.com/arpitsharma-bit/peextrap/internal/domain/category"
	"github.com/arpitsharma-bit/peextrap/internal/domain/profile"
	"github.com/arpitsharma-bit/peextrap/internal/domain/transaction"
	"github.com/arpitsharma-bit/peextrap/internal/domain/user"
	"github.com/arpitsharma-bit/peextrap/internal/middleware"
	"github.com/arpitsharma-bit/peextrap/internal/routes"

	"go.uber.org/fx"
)

var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newAuthRateLimiter,
	),
)

func newHandler(
	userSvc *user.Service,
	authSvc *auth.Service,
	jwtSvc *middleware.JwtService,
	transactionSvc *transaction.Service,
	categorySvc *category.Service,
	budgetSvc *budget.Service,
	profileSvc *profile.Service,
	analyticsSvc *analytics.Service,
) *routes.Handler {
	return &routes.Handler{
		UserService:        userSvc,
		AuthService:        authSvc,
		JwtService:         jwtSvc,
		TransactionService: transactionSvc,
		CategoryService:    categorySvc,
		BudgetService:      budgetSvc,
		ProfileService:     profileSvc,
		AnalyticsService:   analyticsSvc,
	}
}

func newAuthRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
