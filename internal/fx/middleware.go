package fx

import (
	"github.com/arpitsharma-bit/peextrap/config"
	"github.com/arpitsharma-bit/peextrap/internal/domain/user"
	"github.com/arpitsharma-bit/peextrap/internal/middleware"

	"go.uber.org/fx"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newJwtService,
	),
)

func newJwtService(cfg *config.Config, userSvc *user.Service) *middleware.JwtService {
	return middleware.NewJwtService(cfg.JWT, userSvc)
}
