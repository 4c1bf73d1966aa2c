package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bustracker/config"
	"bustracker/internal/domain/entity"
	mockRepo "bustracker/internal/mocks/repository"
	mockSvc "bustracker/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pollerTestDeps struct {
	subRepo   *mockRepo.MockSubscriptionRepository
	userRepo  *mockRepo.MockUserRepository
	schedule  *mockSvc.MockScheduleService
	notifier  *mockSvc.MockNotificationService
	publisher *mockSvc.MockEventPublisher
}

func newTestPoller(t *testing.T) (*pollerService, *pollerTestDeps) {
	t.Helper()

	deps := &pollerTestDeps{
		subRepo:   mockRepo.NewMockSubscriptionRepository(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		schedule:  mockSvc.NewMockScheduleService(t),
		notifier:  mockSvc.NewMockNotificationService(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}

	cfg := &config.Config{
		Poller: &config.PollerConfig{
			Interval:                   time.Minute,
			DefaultNotifyWindowMinutes: 5,
			SubscriptionLimit:          1000,
			StopConcurrency:            4,
		},
	}

	svc := &pollerService{
		subscriptionRepo: deps.subRepo,
		userRepo:         deps.userRepo,
		schedule:         deps.schedule,
		notifier:         deps.notifier,
		publisher:        deps.publisher,
		config:           cfg,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return svc, deps
}

func testSubscription(email, stopID, tripID string) *entity.Subscription {
	return &entity.Subscription{
		ID:     uuid.New(),
		Email:  email,
		StopID: stopID,
		TripID: tripID,
	}
}

func TestPollerService_RunCycle_DispatchesDueArrival(t *testing.T) {
	svc, deps := newTestPoller(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)

	sub := testSubscription("a@x.com", "IU:1", "T1")

	deps.subRepo.EXPECT().
		ListActiveSubscriptions(ctx, 1000).
		Return([]*entity.Subscription{sub}, nil)

	deps.schedule.EXPECT().
		StopTimesByStop(mock.Anything, "IU:1", now).
		Return([]entity.StopTime{
			{TripID: "T1", ArrivalTime: "14:02:00"},
			{TripID: "T9", ArrivalTime: "14:01:00"},
		}, nil)

	deps.userRepo.EXPECT().
		FindByEmail(ctx, "a@x.com").
		Return(&entity.User{Email: "a@x.com", FCMTokens: []string{"tok-1", "tok-2"}}, nil)

	deps.notifier.EXPECT().
		SendBatchNotification(ctx, []string{"tok-1", "tok-2"}, "Bus arriving soon", mock.AnythingOfType("string"), map[string]string{
			"trip_id": "T1",
			"stop_id": "IU:1",
		}).
		Return(2, 0, nil, nil)

	deps.subRepo.EXPECT().
		MarkNotified(ctx, sub.ID, "20260829_14:02:00").
		Return(nil)

	deps.publisher.EXPECT().
		PublishArrivalNotification(ctx, mock.AnythingOfType("*service.ArrivalNotificationEvent")).
		Return(nil)

	stats, err := svc.RunCycle(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Subscriptions)
	assert.Equal(t, 1, stats.Matched)
	assert.Equal(t, 1, stats.Notified)
	assert.Equal(t, 0, stats.SendFailures)
	require.NotNil(t, sub.LastNotifiedFor)
	assert.Equal(t, "20260829_14:02:00", *sub.LastNotifiedFor)
}

func TestPollerService_RunCycle_AlreadyNotifiedIsIdempotent(t *testing.T) {
	svc, deps := newTestPoller(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)

	marker := "20260829_14:02:00"
	sub := testSubscription("a@x.com", "IU:1", "T1")
	sub.LastNotifiedFor = &marker

	deps.subRepo.EXPECT().
		ListActiveSubscriptions(ctx, 1000).
		Return([]*entity.Subscription{sub}, nil)

	deps.schedule.EXPECT().
		StopTimesByStop(mock.Anything, "IU:1", now).
		Return([]entity.StopTime{{TripID: "T1", ArrivalTime: "14:02:00"}}, nil)

	stats, err := svc.RunCycle(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Matched)
	assert.Equal(t, 0, stats.Notified)
}

func TestPollerService_RunCycle_WindowBounds(t *testing.T) {
	tests := []struct {
		name        string
		arrivalTime string
	}{
		{name: "arrival outside window", arrivalTime: "14:06:00"},
		{name: "arrival already past", arrivalTime: "13:59:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestPoller(t)
			ctx := context.Background()
			now := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)

			sub := testSubscription("a@x.com", "IU:1", "T1")

			deps.subRepo.EXPECT().
				ListActiveSubscriptions(ctx, 1000).
				Return([]*entity.Subscription{sub}, nil)

			deps.schedule.EXPECT().
				StopTimesByStop(mock.Anything, "IU:1", now).
				Return([]entity.StopTime{{TripID: "T1", ArrivalTime: tt.arrivalTime}}, nil)

			stats, err := svc.RunCycle(ctx, now)
			require.NoError(t, err)
			assert.Equal(t, 0, stats.Notified)
			assert.Nil(t, sub.LastNotifiedFor)
		})
	}
}

func TestPollerService_RunCycle_WindowOverride(t *testing.T) {
	svc, deps := newTestPoller(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)

	window := 10
	sub := testSubscription("a@x.com", "IU:1", "T1")
	sub.NotifyBeforeMinutes = &window

	deps.subRepo.EXPECT().
		ListActiveSubscriptions(ctx, 1000).
		Return([]*entity.Subscription{sub}, nil)

	// 8 minutes out is outside the default window of 5 but inside the
	// subscription's own window of 10.
	deps.schedule.EXPECT().
		StopTimesByStop(mock.Anything, "IU:1", now).
		Return([]entity.StopTime{{TripID: "T1", ArrivalTime: "14:08:00"}}, nil)

	deps.userRepo.EXPECT().
		FindByEmail(ctx, "a@x.com").
		Return(&entity.User{Email: "a@x.com", FCMTokens: []string{"tok-1"}}, nil)

	deps.notifier.EXPECT().
		SendBatchNotification(ctx, []string{"tok-1"}, "Bus arriving soon", mock.AnythingOfType("string"), mock.Anything).
		Return(1, 0, nil, nil)

	deps.subRepo.EXPECT().
		MarkNotified(ctx, sub.ID, "20260829_14:08:00").
		Return(nil)

	deps.publisher.EXPECT().
		PublishArrivalNotification(ctx, mock.Anything).
		Return(nil)

	stats, err := svc.RunCycle(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Notified)
}

func TestPollerService_RunCycle_StopFailureIsIsolated(t *testing.T) {
	svc, deps := newTestPoller(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)

	subA := testSubscription("a@x.com", "STOP:A", "T1")
	subB := testSubscription("b@x.com", "STOP:B", "T2")

	deps.subRepo.EXPECT().
		ListActiveSubscriptions(ctx, 1000).
		Return([]*entity.Subscription{subA, subB}, nil)

	deps.schedule.EXPECT().
		StopTimesByStop(mock.Anything, "STOP:A", now).
		Return(nil, errors.New("upstream returned 500"))

	deps.schedule.EXPECT().
		StopTimesByStop(mock.Anything, "STOP:B", now).
		Return([]entity.StopTime{{TripID: "T2", ArrivalTime: "14:03:00"}}, nil)

	deps.userRepo.EXPECT().
		FindByEmail(ctx, "b@x.com").
		Return(&entity.User{Email: "b@x.com", FCMTokens: []string{"tok-b"}}, nil)

	deps.notifier.EXPECT().
		SendBatchNotification(ctx, []string{"tok-b"}, "Bus arriving soon", mock.AnythingOfType("string"), mock.Anything).
		Return(1, 0, nil, nil)

	deps.subRepo.EXPECT().
		MarkNotified(ctx, subB.ID, "20260829_14:03:00").
		Return(nil)

	deps.publisher.EXPECT().
		PublishArrivalNotification(ctx, mock.Anything).
		Return(nil)

	stats, err := svc.RunCycle(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.StopFailures)
	assert.Equal(t, 1, stats.Notified)
	assert.Nil(t, subA.LastNotifiedFor)
}

func TestPollerService_RunCycle_ZeroTokensSkipsSilently(t *testing.T) {
	svc, deps := newTestPoller(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)

	sub := testSubscription("a@x.com", "IU:1", "T1")

	deps.subRepo.EXPECT().
		ListActiveSubscriptions(ctx, 1000).
		Return([]*entity.Subscription{sub}, nil)

	deps.schedule.EXPECT().
		StopTimesByStop(mock.Anything, "IU:1", now).
		Return([]entity.StopTime{{TripID: "T1", ArrivalTime: "14:02:00"}}, nil)

	deps.userRepo.EXPECT().
		FindByEmail(ctx, "a@x.com").
		Return(&entity.User{Email: "a@x.com"}, nil)

	stats, err := svc.RunCycle(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Matched)
	assert.Equal(t, 0, stats.Notified)
	assert.Equal(t, 0, stats.SendFailures)
	assert.Nil(t, sub.LastNotifiedFor)
}

func TestPollerService_RunCycle_SendFailureLeavesMarkerUnset(t *testing.T) {
	svc, deps := newTestPoller(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)

	sub := testSubscription("a@x.com", "IU:1", "T1")

	deps.subRepo.EXPECT().
		ListActiveSubscriptions(ctx, 1000).
		Return([]*entity.Subscription{sub}, nil)

	deps.schedule.EXPECT().
		StopTimesByStop(mock.Anything, "IU:1", now).
		Return([]entity.StopTime{{TripID: "T1", ArrivalTime: "14:02:00"}}, nil)

	deps.userRepo.EXPECT().
		FindByEmail(ctx, "a@x.com").
		Return(&entity.User{Email: "a@x.com", FCMTokens: []string{"tok-1"}}, nil)

	deps.notifier.EXPECT().
		SendBatchNotification(ctx, []string{"tok-1"}, "Bus arriving soon", mock.AnythingOfType("string"), mock.Anything).
		Return(0, 1, []string{"tok-1"}, errors.New("messaging unavailable"))

	stats, err := svc.RunCycle(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.SendFailures)
	assert.Equal(t, 0, stats.Notified)
	assert.Nil(t, sub.LastNotifiedFor)
}

func TestPollerService_RunCycle_MalformedScheduleEntrySkipped(t *testing.T) {
	svc, deps := newTestPoller(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)

	sub := testSubscription("a@x.com", "IU:1", "T1")

	deps.subRepo.EXPECT().
		ListActiveSubscriptions(ctx, 1000).
		Return([]*entity.Subscription{sub}, nil)

	deps.schedule.EXPECT().
		StopTimesByStop(mock.Anything, "IU:1", now).
		Return([]entity.StopTime{{TripID: "T1", ArrivalTime: "garbage"}}, nil)

	stats, err := svc.RunCycle(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Matched)
	assert.Equal(t, 0, stats.Notified)
}

func TestPollerService_RunCycle_ListFailureAbortsCycle(t *testing.T) {
	svc, deps := newTestPoller(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)

	deps.subRepo.EXPECT().
		ListActiveSubscriptions(ctx, 1000).
		Return(nil, errors.New("connection refused"))

	stats, err := svc.RunCycle(ctx, now)
	assert.Error(t, err)
	assert.Nil(t, stats)
}

func TestPollerService_RunCycle_NoSubscriptions(t *testing.T) {
	svc, deps := newTestPoller(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)

	deps.subRepo.EXPECT().
		ListActiveSubscriptions(ctx, 1000).
		Return(nil, nil)

	stats, err := svc.RunCycle(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Subscriptions)
	assert.Equal(t, 0, stats.StopsQueried)
}
