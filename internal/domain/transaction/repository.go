package transaction

import (
	"context"
	"time"

	"github.com/arpitsharma-bit/peextrap/internal/pkg"

	"github.com/oklog/ulid/v2"
)

// Filters narrows the transaction listing. Nil fields are ignored.
type Filters struct {
	Type       *Types
	CategoryID *ulid.ULID
	From       *time.Time
	To         *time.Time
}

type Repository interface {
	Create(ctx context.Context, transaction *Transaction) error
	Delete(ctx context.Context, transactionID ulid.ULID) error
	GetByID(ctx context.Context, transactionID ulid.ULID) (*Transaction, error)
	GetByIDAndUser(ctx context.Context, transactionID, userID ulid.ULID) (*Transaction, error)
	GetAll(ctx context.Context, userID ulid.ULID, filters *Filters, pagination *pkg.PaginationParams) ([]*Transaction, int64, error)
	GetAllForUser(ctx context.Context, userID ulid.ULID) ([]*Transaction, error)
	GetByCategory(ctx context.Context, categoryID ulid.ULID, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Transaction, int64, error)
	CountByCategory(ctx context.Context, categoryID ulid.ULID, userID ulid.ULID) (int64, error)
}
