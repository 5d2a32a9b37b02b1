package service

import (
	"context"

	"crowdWatch/internal/domain"
)

func (s *UserService) ResolveProfile(ctx context.Context, userID string) (*domain.User, int, error) {
	return s.resolveProfile(ctx, userID)
}
