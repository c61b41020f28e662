package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// UserService implements public profiles and self-service profile updates.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProfile applies a partial update to the actor's own account.
func (s *UserService) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Bio != nil {
		user.Profile.Bio = *input.Bio
	}
	if input.Skills != nil {
		user.Profile.Skills = *input.Skills
	}
	if input.Location != nil {
		user.Profile.Location = *input.Location
	}
	if input.Avatar != nil {
		user.Profile.Avatar = *input.Avatar
	}

	return s.repo.Update(ctx, user)
}

// NotificationService derives badge counts from application state. Counting
// failures degrade to zero so the badge never breaks a page load.
type NotificationService struct {
	apps ports.ApplicationRepository
	log  zerolog.Logger
}

func NewNotificationService(apps ports.ApplicationRepository, log zerolog.Logger) *NotificationService {
	return &NotificationService{apps: apps, log: log}
}

func (s *NotificationService) PendingApplications(ctx context.Context, clientID int64) (int64, error) {
	n, err := s.apps.CountPendingForClient(ctx, clientID)
	if err != nil {
		s.log.Warn().Err(err).Int64("client_id", clientID).Msg("pending application count failed")
		return 0, nil
	}
	return n, nil
}

func (s *NotificationService) UnseenResponses(ctx context.Context, freelancerID int64) (int64, error) {
	n, err := s.apps.CountUnseenDecided(ctx, freelancerID)
	if err != nil {
		s.log.Warn().Err(err).Int64("freelancer_id", freelancerID).Msg("unseen response count failed")
		return 0, nil
	}
	return n, nil
}
