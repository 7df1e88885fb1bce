package repository

import (
	"context"

	"devconnector/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for profiles.
// Returned profiles have their owner's name and avatar populated.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	List(ctx context.Context) ([]*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Save(ctx context.Context, profile *models.Profile) error
}

type profileRepository struct {
	db    *gorm.DB
	users UserRepository
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB, users UserRepository) ProfileRepository {
	return &profileRepository{db: db, users: users}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, mapError(err, "Profile")
	}
	if err := r.populate(ctx, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]*models.Profile, error) {
	profiles := []*models.Profile{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := r.populate(ctx, profiles...); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Profile already exists")
		}
		return models.NewInternalError(err)
	}
	return r.populate(ctx, profile)
}

// Save rewrites the whole profile row, embedded arrays included. A profile
// removed since it was read is reported as not found and stays removed.
func (r *profileRepository) Save(ctx context.Context, profile *models.Profile) error {
	if err := replaceRow(ctx, r.db, profile, profile.ID, "Profile"); err != nil {
		return err
	}
	return r.populate(ctx, profile)
}

func (r *profileRepository) populate(ctx context.Context, profiles ...*models.Profile) error {
	ids := make([]uint, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID)
	}
	summaries, err := r.users.GetSummaries(ctx, ids)
	if err != nil {
		return err
	}
	for _, p := range profiles {
		p.User = summaries[p.UserID]
	}
	return nil
}
