package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"bustracker/config"
	"bustracker/internal/domain/entity"
	"bustracker/internal/domain/repository"
	"bustracker/internal/domain/service"
	"bustracker/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const notificationTitle = "Bus arriving soon"

type pollerService struct {
	subscriptionRepo repository.SubscriptionRepository
	userRepo         repository.UserRepository
	schedule         service.ScheduleService
	notifier         service.NotificationService
	publisher        service.EventPublisher
	config           *config.Config
	logger           *slog.Logger
}

// PollerServiceParams holds dependencies for PollerService, injected by Fx.
type PollerServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	UserRepo         repository.UserRepository
	Schedule         service.ScheduleService     `optional:"true"`
	Notifier         service.NotificationService `optional:"true"`
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewPollerService creates a new poller service instance
func NewPollerService(params PollerServiceParams) usecase.PollerUsecase {
	return &pollerService{
		subscriptionRepo: params.SubscriptionRepo,
		userRepo:         params.UserRepo,
		schedule:         params.Schedule,
		notifier:         params.Notifier,
		publisher:        params.Publisher,
		config:           params.Config,
		logger:           params.Logger,
	}
}

// stopFetch carries the outcome of one per-stop schedule query.
type stopFetch struct {
	times []entity.StopTime
	err   error
}

// RunCycle executes one poll cycle against the reference time now.
func (s *pollerService) RunCycle(ctx context.Context, now time.Time) (*usecase.CycleStats, error) {
	started := time.Now()
	stats := &usecase.CycleStats{}

	subscriptions, err := s.subscriptionRepo.ListActiveSubscriptions(ctx, s.config.Poller.SubscriptionLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active subscriptions")
	}
	stats.Subscriptions = len(subscriptions)
	if len(subscriptions) == 0 {
		stats.Elapsed = time.Since(started)
		return stats, nil
	}

	byStop := groupByStop(subscriptions)
	stats.StopsQueried = len(byStop)

	results := s.fetchStops(ctx, byStop, now)

	for stopID, subs := range byStop {
		fetched := results[stopID]
		if fetched.err != nil {
			stats.StopFailures++
			s.logger.Warn("stop times fetch failed, skipping stop for this cycle",
				slog.String("stop_id", stopID),
				slog.Any("error", fetched.err),
			)
			continue
		}

		s.processStop(ctx, now, stopID, subs, fetched.times, stats)
	}

	stats.Elapsed = time.Since(started)
	s.logger.Info("poll cycle completed",
		slog.Int("subscriptions", stats.Subscriptions),
		slog.Int("stops", stats.StopsQueried),
		slog.Int("stop_failures", stats.StopFailures),
		slog.Int("matched", stats.Matched),
		slog.Int("notified", stats.Notified),
		slog.Int("send_failures", stats.SendFailures),
		slog.Duration("elapsed", stats.Elapsed),
	)

	return stats, nil
}

// groupByStop partitions subscriptions by stop so each distinct stop is
// queried exactly once per cycle.
func groupByStop(subscriptions []*entity.Subscription) map[string][]*entity.Subscription {
	byStop := make(map[string][]*entity.Subscription)
	for _, sub := range subscriptions {
		byStop[sub.StopID] = append(byStop[sub.StopID], sub)
	}

	return byStop
}

// fetchStops queries the schedule feed for every stop with bounded
// concurrency and fans the results back in before returning.
func (s *pollerService) fetchStops(ctx context.Context, byStop map[string][]*entity.Subscription, now time.Time) map[string]stopFetch {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]stopFetch, len(byStop))
	)

	sem := make(chan struct{}, s.config.Poller.StopConcurrency)
	for stopID := range byStop {
		wg.Add(1)
		sem <- struct{}{}

		go func(stopID string) {
			defer wg.Done()
			defer func() { <-sem }()

			times, err := s.schedule.StopTimesByStop(ctx, stopID, now)

			mu.Lock()
			results[stopID] = stopFetch{times: times, err: err}
			mu.Unlock()
		}(stopID)
	}
	wg.Wait()

	return results
}

// processStop matches one stop's fetched schedule against its subscriptions
// and dispatches whatever is due.
func (s *pollerService) processStop(ctx context.Context, now time.Time, stopID string, subs []*entity.Subscription, times []entity.StopTime, stats *usecase.CycleStats) {
	for _, sub := range subs {
		for _, st := range times {
			if st.TripID != sub.TripID {
				continue
			}
			stats.Matched++

			arrival, err := parseServiceTime(now, st.ArrivalTime)
			if err != nil {
				s.logger.Warn("skipping malformed schedule entry",
					slog.String("stop_id", stopID),
					slog.String("trip_id", st.TripID),
					slog.String("arrival_time", st.ArrivalTime),
					slog.Any("error", err),
				)
				continue
			}

			diffMinutes := arrival.Sub(now).Minutes()
			if diffMinutes < 0 || diffMinutes > float64(sub.Window(s.config.Poller.DefaultNotifyWindowMinutes)) {
				continue
			}

			key := arrivalKey(now, st.ArrivalTime)
			if sub.AlreadyNotified(key) {
				continue
			}

			s.dispatch(ctx, sub, st, key, diffMinutes, stats)
		}
	}
}

// dispatch sends the push notification for one due arrival and commits the
// idempotency marker only after the send succeeded.
func (s *pollerService) dispatch(ctx context.Context, sub *entity.Subscription, st entity.StopTime, key string, diffMinutes float64, stats *usecase.CycleStats) {
	user, err := s.userRepo.FindByEmail(ctx, sub.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Debug("subscription owner has no user record, skipping",
				slog.String("email", sub.Email),
				slog.String("subscription_id", sub.ID.String()),
			)
			return
		}

		stats.SendFailures++
		s.logger.Error("failed to load user for dispatch",
			slog.String("email", sub.Email),
			slog.Any("error", err),
		)
		return
	}

	if len(user.FCMTokens) == 0 {
		s.logger.Debug("no registered device tokens, skipping dispatch",
			slog.String("email", sub.Email),
			slog.String("subscription_id", sub.ID.String()),
		)
		return
	}

	body := fmt.Sprintf("Trip %s arrives at stop %s at %s (in %d min)",
		sub.TripID, sub.StopID, st.ArrivalTime, int(math.Round(diffMinutes)))
	data := map[string]string{
		"trip_id": sub.TripID,
		"stop_id": sub.StopID,
	}

	successCount, _, invalidTokens, err := s.notifier.SendBatchNotification(ctx, user.FCMTokens, notificationTitle, body, data)
	if err != nil || successCount == 0 {
		stats.SendFailures++
		s.logger.Error("push dispatch failed, marker left unset for retry",
			slog.String("subscription_id", sub.ID.String()),
			slog.String("arrival_key", key),
			slog.Int("invalid_tokens", len(invalidTokens)),
			slog.Any("error", err),
		)
		return
	}

	if err := s.subscriptionRepo.MarkNotified(ctx, sub.ID, key); err != nil {
		s.logger.Error("failed to record notification marker",
			slog.String("subscription_id", sub.ID.String()),
			slog.String("arrival_key", key),
			slog.Any("error", err),
		)
	}
	// Keep the in-memory copy consistent so a second matching entry in the
	// same cycle cannot dispatch again.
	sub.LastNotifiedFor = &key

	stats.Notified++
	s.logger.Info("arrival notification sent",
		slog.String("email", sub.Email),
		slog.String("stop_id", sub.StopID),
		slog.String("trip_id", sub.TripID),
		slog.String("arrival_key", key),
		slog.Int("tokens", len(user.FCMTokens)),
		slog.Int("delivered", successCount),
	)

	event := &service.ArrivalNotificationEvent{
		SubscriptionID: sub.ID.String(),
		Email:          sub.Email,
		StopID:         sub.StopID,
		TripID:         sub.TripID,
		ArrivalKey:     key,
		ArrivalTime:    st.ArrivalTime,
		MinutesAway:    diffMinutes,
		TokenCount:     len(user.FCMTokens),
	}
	if err := s.publisher.PublishArrivalNotification(ctx, event); err != nil {
		s.logger.Warn("failed to publish arrival notification event",
			slog.String("subscription_id", sub.ID.String()),
			slog.Any("error", err),
		)
	}
}
