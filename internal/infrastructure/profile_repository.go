package infrastructure

import (
	"context"
	"time"

	"github.com/arpitsharma-bit/peextrap/internal/domain/profile"
	appErrors "github.com/arpitsharma-bit/peextrap/internal/errors"
	"github.com/arpitsharma-bit/peextrap/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

type profileDB struct {
	Id          string    `gorm:"type:varchar(26);primaryKey"`
	UserId      string    `gorm:"type:varchar(26);uniqueIndex:idx_profiles_user_id;not null"`
	DisplayName string    `gorm:"type:varchar(100)"`
	Currency    string    `gorm:"type:varchar(3);not null;default:'USD'"`
	Country     string    `gorm:"type:varchar(100)"`
	AvatarURL   string    `gorm:"type:varchar(255)"`
	IconColor   string    `gorm:"type:varchar(7)"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;not null"`
}

func (profileDB) TableName() string {
	return "user_profiles"
}

func toDomainProfile(pdb *profileDB) (*profile.Profile, error) {
	id, err := pkg.ParseULID(pdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	userID, err := pkg.ParseULID(pdb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &profile.Profile{
		Id:          id,
		UserId:      userID,
		DisplayName: pdb.DisplayName,
		Currency:    pdb.Currency,
		Country:     pdb.Country,
		AvatarURL:   pdb.AvatarURL,
		IconColor:   pdb.IconColor,
		CreatedAt:   pdb.CreatedAt,
		UpdatedAt:   pdb.UpdatedAt,
	}, nil
}

func toDBProfile(p *profile.Profile) *profileDB {
	return &profileDB{
		Id:          p.Id.String(),
		UserId:      p.UserId.String(),
		DisplayName: p.DisplayName,
		Currency:    p.Currency,
		Country:     p.Country,
		AvatarURL:   p.AvatarURL,
		IconColor:   p.IconColor,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID ulid.ULID) (*profile.Profile, error) {
	var pdb profileDB
	err := r.DB.WithContext(ctx).Table("user_profiles").
		Where("user_id = ?", userID.String()).
		First(&pdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainProfile(&pdb)
}

func (r *ProfileRepository) Upsert(ctx context.Context, p *profile.Profile) error {
	pdb := toDBProfile(p)
	return r.DB.WithContext(ctx).Table("user_profiles").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"display_name", "currency", "country", "avatar_url", "icon_color", "updated_at"}),
		}).
		Create(pdb).Error
}
