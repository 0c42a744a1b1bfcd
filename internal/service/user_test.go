package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/domain"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/service"
)

func TestUserService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo)

		userRepo.On("GetByID", mock.Anything, "u1").Return(requester, nil)

		user, err := svc.GetProfile(ctx, "u1")
		assert.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("Missing", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo)

		userRepo.On("GetByID", mock.Anything, "ghost").Return(nil, nil)

		_, err := svc.GetProfile(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserService_ListCollectors(t *testing.T) {
	ctx := context.Background()

	t.Run("AdminOnly", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo)

		_, err := svc.ListCollectors(ctx, requester)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		userRepo.AssertNotCalled(t, "ListByRole", mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo)

		userRepo.On("ListByRole", mock.Anything, domain.RoleCollector).
			Return([]domain.User{*collector}, nil)

		collectors, err := svc.ListCollectors(ctx, admin)
		assert.NoError(t, err)
		assert.Len(t, collectors, 1)
	})
}
