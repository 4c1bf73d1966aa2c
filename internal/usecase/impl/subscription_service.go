package impl

import (
	"context"

	"bustracker/config"
	"bustracker/internal/domain/entity"
	domainerrors "bustracker/internal/domain/errors"
	"bustracker/internal/domain/repository"
	"bustracker/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	userRepo         repository.UserRepository
	config           *config.Config
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	UserRepo         repository.UserRepository
	Config           *config.Config
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		userRepo:         params.UserRepo,
		config:           params.Config,
	}
}

// CreateSubscription creates a subscription or updates the notify window of an
// existing one. The (email, stop_id, trip_id) triple is the upsert identity,
// and the idempotency marker of an existing row is never reset here.
func (s *subscriptionService) CreateSubscription(ctx context.Context, input *usecase.SubscriptionInput) (*entity.Subscription, error) {
	if input.NotifyBeforeMinutes != nil && *input.NotifyBeforeMinutes < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("notify_before_minutes must be zero or positive")
	}

	if err := s.userRepo.EnsureUser(ctx, input.Email); err != nil {
		return nil, errors.Wrap(err, "failed to ensure subscription owner")
	}

	subscription := &entity.Subscription{
		Email:               input.Email,
		StopID:              input.StopID,
		TripID:              input.TripID,
		NotifyBeforeMinutes: input.NotifyBeforeMinutes,
	}
	if err := s.subscriptionRepo.UpsertSubscription(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "failed to upsert subscription")
	}

	return subscription, nil
}

// ListSubscriptions retrieves the active subscription set, oldest first
func (s *subscriptionService) ListSubscriptions(ctx context.Context) ([]*entity.Subscription, error) {
	subscriptions, err := s.subscriptionRepo.ListActiveSubscriptions(ctx, s.config.Poller.SubscriptionLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	return subscriptions, nil
}

// GetSubscriptionsByEmail retrieves all subscriptions owned by an email
func (s *subscriptionService) GetSubscriptionsByEmail(ctx context.Context, email string) ([]*entity.Subscription, error) {
	subscriptions, err := s.subscriptionRepo.FindSubscriptionsByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by email")
	}

	return subscriptions, nil
}
