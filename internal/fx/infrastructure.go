package fx

import (
	"github.com/arpitsharma-bit/peextrap/config"
	"github.com/arpitsharma-bit/peextrap/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newUserRepository,
		newProfileRepository,
		newCategoryRepository,
		newTransactionRepository,
		newBudgetRepository,
		newLocalStorage,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newUserRepository(db *gorm.DB) *infrastructure.UserRepository {
	return &infrastructure.UserRepository{DB: db}
}

func newProfileRepository(db *gorm.DB) *infrastructure.ProfileRepository {
	return &infrastructure.ProfileRepository{DB: db}
}

func newCategoryRepository(db *gorm.DB) *infrastructure.CategoryRepository {
	return &infrastructure.CategoryRepository{DB: db}
}

func newTransactionRepository(db *gorm.DB) *infrastructure.TransactionRepository {
	return &infrastructure.TransactionRepository{DB: db}
}

func newBudgetRepository(db *gorm.DB) *infrastructure.BudgetRepository {
	return &infrastructure.BudgetRepository{DB: db}
}

func newLocalStorage(cfg *config.Config) (*infrastructure.LocalStorage, error) {
	return infrastructure.NewLocalStorage(cfg)
}
