// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bustracker/internal/domain/entity"
	domainerrors "bustracker/internal/domain/errors"
	"bustracker/internal/domain/repository"
	"bustracker/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByEmail retrieves a single user by email, with their current FCM token
// set attached.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Devices", func(db *gorm.DB) *gorm.DB {
			return db.Order("user_devices.created_at ASC")
		}).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// EnsureUser creates the user row for an email if it does not exist yet.
func (repo *userRepository) EnsureUser(ctx context.Context, email string) error {
	userM := &model.UserModel{Email: email}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(userM).Error
	if err != nil {
		// A concurrent insert can still surface the unique violation despite
		// the conflict clause. The row exists, which is all we need.
		if isUniqueConstraintViolation(err) {
			return nil
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("email is required")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to ensure user")
	}

	return nil
}

// AddFCMToken registers a push token for a rider, suppressing duplicates via
// the unique (email, fcm_token) index. The user row is created when missing.
func (repo *userRepository) AddFCMToken(ctx context.Context, email, token string) (*entity.User, error) {
	if err := repo.EnsureUser(ctx, email); err != nil {
		return nil, err
	}

	deviceM := &model.UserDeviceModel{
		Email:    email,
		FCMToken: token,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}, {Name: "fcm_token"}},
			DoNothing: true,
		}).
		Create(deviceM).Error
	if err != nil && !isUniqueConstraintViolation(err) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to register FCM token")
	}

	return repo.FindByEmail(ctx, email)
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	tokens := make([]string, 0, len(data.Devices))
	for _, device := range data.Devices {
		tokens = append(tokens, device.FCMToken)
	}

	return &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		FCMTokens: tokens,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
