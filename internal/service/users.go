package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"crowdWatch/internal/alerts"
	"crowdWatch/internal/domain"
	"crowdWatch/pkg/e"

	"github.com/google/uuid"
)

type BootstrapConfig struct {
	Attempts    int
	BaseBackoff time.Duration
}

func DefaultBootstrapConfig() BootstrapConfig {
	return BootstrapConfig{Attempts: 3, BaseBackoff: 2 * time.Second}
}

// UserService finishes account setup once the client has written the profile.
type UserService struct {
	users         UserRepository
	notifications NotificationRepository
	push          Broadcaster
	profile       alerts.Profile
	cfg           BootstrapConfig
	logger        *slog.Logger
	now           func() time.Time
	sleep         func(ctx context.Context, d time.Duration) error
}

func NewUserService(users UserRepository, notifications NotificationRepository, push Broadcaster, profile alerts.Profile, cfg BootstrapConfig, logger *slog.Logger) *UserService {
	if cfg.Attempts <= 0 {
		cfg.Attempts = 1
	}
	return &UserService{
		users:         users,
		notifications: notifications,
		push:          push,
		profile:       profile,
		cfg:           cfg,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
		sleep:         sleepCtx,
	}
}

// Bootstrap resolves the user's profile with a bounded poll, falls back to
// the default role when it never shows up, writes a welcome record and
// subscribes the user's push token to the role topics.
func (s *UserService) Bootstrap(ctx context.Context, userID string, req domain.BootstrapUserRequest) (domain.BootstrapResult, error) {
	res := domain.BootstrapResult{UserID: userID, State: domain.ProfilePending}

	user, attempts, err := s.resolveProfile(ctx, userID)
	res.Attempts = attempts
	if err != nil && !errors.Is(err, e.ErrProfileNotFound) {
		return res, err
	}

	if user != nil {
		res.State = domain.ProfileResolved
		res.Role = user.Role
	} else {
		res.State = domain.ProfileDefaulted
		s.logger.Warn("user profile not found, using default role",
			slog.String("user_id", userID),
			slog.Int("attempts", attempts),
		)
	}
	if res.Role == "" {
		res.Role = s.profile.DefaultRole
	}

	welcome := domain.NotificationRecord{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       "Welcome to CrowdWatch!",
		Body:        fmt.Sprintf("Hello %s, your account has been set up as %s. You will receive important updates and alerts here.", displayName(user, req), formatRole(res.Role)),
		Type:        domain.NotificationWelcome,
		ReferenceID: userID,
		CreatedAt:   s.now(),
	}
	if err := s.notifications.InsertNotifications(ctx, []domain.NotificationRecord{welcome}); err != nil {
		return res, err
	}

	if user == nil || user.FCMToken == "" {
		s.logger.Info("no push token, topic subscriptions deferred to the client", slog.String("user_id", userID))
		return res, nil
	}

	for _, topic := range s.profile.TopicsForRole(res.Role) {
		if err := s.push.Subscribe(ctx, user.FCMToken, topic); err != nil {
			s.logger.Error("topic subscription failed",
				slog.String("user_id", userID),
				slog.String("topic", topic),
				slog.Any("error", err),
			)
			res.FailedTopics = append(res.FailedTopics, topic)
			continue
		}
		res.Subscribed = append(res.Subscribed, topic)
	}

	s.logger.Info("user bootstrapped",
		slog.String("user_id", userID),
		slog.String("role", res.Role),
		slog.String("state", string(res.State)),
	)
	return res, nil
}

// resolveProfile polls for the profile with doubling backoff and returns
// ErrProfileNotFound once every attempt found nothing.
func (s *UserService) resolveProfile(ctx context.Context, userID string) (*domain.User, int, error) {
	backoff := s.cfg.BaseBackoff
	for attempt := 1; attempt <= s.cfg.Attempts; attempt++ {
		user, err := s.users.GetUser(ctx, userID)
		if err == nil {
			return user, attempt, nil
		}
		if !errors.Is(err, e.ErrNotFound) {
			return nil, attempt, err
		}
		if attempt == s.cfg.Attempts {
			return nil, attempt, fmt.Errorf("user %s: %w", userID, e.ErrProfileNotFound)
		}
		if err := s.sleep(ctx, backoff); err != nil {
			return nil, attempt, err
		}
		backoff *= 2
	}
	return nil, s.cfg.Attempts, fmt.Errorf("user %s: %w", userID, e.ErrProfileNotFound)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func displayName(user *domain.User, req domain.BootstrapUserRequest) string {
	switch {
	case user != nil && user.DisplayName != "":
		return user.DisplayName
	case req.DisplayName != "":
		return req.DisplayName
	}
	email := req.Email
	if user != nil && user.Email != "" {
		email = user.Email
	}
	if local, _, _ := strings.Cut(email, "@"); local != "" {
		return local
	}
	return "New User"
}

var roleNames = map[string]string{
	domain.RoleFan:       "a Fan",
	domain.RoleOrganizer: "an Event Organizer",
	domain.RoleSecurity:  "Security Team",
	domain.RoleEmergency: "Emergency Services",
}

func formatRole(role string) string {
	if name, ok := roleNames[role]; ok {
		return name
	}
	return role
}

// Notifications returns the user's inbox, newest first.
func (s *UserService) Notifications(ctx context.Context, userID string, limit int) ([]domain.NotificationRecord, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user id: %w", e.ErrInvalidInput)
	}
	return s.notifications.ListForUser(ctx, userID, limit)
}
