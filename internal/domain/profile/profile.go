package profile

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

// Profile carries the per-user display preferences that live alongside
// the account itself.
type Profile struct {
	Id          ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId      ulid.ULID `gorm:"type:varchar(26);uniqueIndex:idx_profiles_user_id;not null" json:"userId"`
	DisplayName string    `gorm:"type:varchar(100)" json:"displayName"`
	Currency    string    `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	Country     string    `gorm:"type:varchar(100)" json:"country"`
	AvatarURL   string    `gorm:"type:varchar(255)" json:"avatarUrl"`
	IconColor   string    `gorm:"type:varchar(7)" json:"iconColor"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Profile) TableName() string {
	return "user_profiles"
}

type Repository interface {
	GetByUserID(ctx context.Context, userID ulid.ULID) (*Profile, error)
	Upsert(ctx context.Context, profile *Profile) error
}

// ObjectStorage persists uploaded avatar files and hands back a public URL.
type ObjectStorage interface {
	Save(ctx context.Context, filename string, data []byte) (string, error)
	Remove(ctx context.Context, filename string) error
}
