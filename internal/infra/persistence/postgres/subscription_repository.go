// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bustracker/internal/domain/entity"
	domainerrors "bustracker/internal/domain/errors"
	"bustracker/internal/domain/repository"
	"bustracker/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// UpsertSubscription creates or updates a subscription keyed on
// (email, stop_id, trip_id). CreatedAt and LastNotifiedFor are preserved on
// conflict so a re-subscribe never resets the idempotency marker.
func (repo *subscriptionRepository) UpsertSubscription(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "email"}, {Name: "stop_id"}, {Name: "trip_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"notify_before_minutes",
				"updated_at",
			}),
		}).
		Create(subscriptionM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required subscription information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert subscription")
	}

	// Read the stored row back; on conflict the in-memory model carries
	// neither the existing id nor the idempotency marker.
	var stored model.SubscriptionModel
	if err := repo.db.WithContext(ctx).
		Where("email = ? AND stop_id = ? AND trip_id = ?", subscription.Email, subscription.StopID, subscription.TripID).
		First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload upserted subscription")
	}

	*subscription = *toSubscriptionDomain(&stored)

	return nil
}

// ListActiveSubscriptions retrieves the active subscription set, capped at
// limit rows to bound per-cycle cost.
func (repo *subscriptionRepository) ListActiveSubscriptions(ctx context.Context, limit int) ([]*entity.Subscription, error) {
	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Limit(limit).
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active subscriptions")
	}

	subscriptions := make([]*entity.Subscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// FindSubscriptionsByEmail retrieves all subscriptions owned by a rider.
func (repo *subscriptionRepository) FindSubscriptionsByEmail(ctx context.Context, email string) ([]*entity.Subscription, error) {
	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at ASC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by email")
	}

	subscriptions := make([]*entity.Subscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// MarkNotified records the idempotency marker for one scheduled arrival.
// A single-row update keyed by the subscription id; the aggregation step
// guarantees no two concurrent paths touch the same row.
func (repo *subscriptionRepository) MarkNotified(ctx context.Context, id uuid.UUID, arrivalKey string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ?", id).
		Update("last_notified_for", arrivalKey)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark subscription notified")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM SubscriptionModel to a domain Subscription entity.
func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	return &entity.Subscription{
		ID:                  data.ID,
		Email:               data.Email,
		StopID:              data.StopID,
		TripID:              data.TripID,
		NotifyBeforeMinutes: data.NotifyBeforeMinutes,
		LastNotifiedFor:     data.LastNotifiedFor,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromSubscriptionDomain converts a domain Subscription entity to a GORM SubscriptionModel.
func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.SubscriptionModel{
		ID:                  data.ID,
		Email:               data.Email,
		StopID:              data.StopID,
		TripID:              data.TripID,
		NotifyBeforeMinutes: data.NotifyBeforeMinutes,
		LastNotifiedFor:     data.LastNotifiedFor,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
