package service

import (
	"context"
	"fmt"

	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/domain"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, persistenceError("load profile", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, userID)
	}
	return user, nil
}

func (s *userService) ListCollectors(ctx context.Context, actor *domain.User) ([]domain.User, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: admin access required", domain.ErrForbidden)
	}
	collectors, err := s.userRepo.ListByRole(ctx, domain.RoleCollector)
	if err != nil {
		return nil, persistenceError("list collectors", err)
	}
	return collectors, nil
}
