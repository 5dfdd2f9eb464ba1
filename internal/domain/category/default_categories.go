package category

import (
	"github.com/arpitsharma-bit/peextrap/internal/pkg"

	"github.com/oklog/ulid/v2"
)

// DefaultCategory describes one of the categories every new account
// starts with.
type DefaultCategory struct {
	Name     string
	Color    string
	Icon     string
	IsIncome bool
}

var DefaultCategories = []DefaultCategory{
	{Name: "Food & Dining", Color: "#F97316", Icon: "🍽️"},
	{Name: "Transportation", Color: "#3B82F6", Icon: "🚗"},
	{Name: "Entertainment", Color: "#8B5CF6", Icon: "🎬"},
	{Name: "Shopping", Color: "#EF4444", Icon: "🛍️"},
	{Name: "Health", Color: "#10B981", Icon: "🏥"},
	{Name: "Utilities", Color: "#F59E0B", Icon: "⚡"},
	{Name: "Income", Color: "#10B946", Icon: "💰", IsIncome: true},
	{Name: "Other", Color: "#6B7280", Icon: "📝"},
}

// BuildDefaults materializes the default set for a user, each with a
// fresh ULID and the isDefault flag set.
func BuildDefaults(userID ulid.ULID) []*Category {
	now := pkg.SetTimestamps()

	out := make([]*Category, 0, len(DefaultCategories))
	for _, d := range DefaultCategories {
		out = append(out, &Category{
			Id:        pkg.GenerateULIDObject(),
			UserId:    userID,
			Name:      d.Name,
			Color:     d.Color,
			Icon:      d.Icon,
			IsDefault: true,
			IsIncome:  d.IsIncome,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return out
}
