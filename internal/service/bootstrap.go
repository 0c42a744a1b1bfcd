package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/domain"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/logger"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/repository"
)

type bootstrapService struct {
	userRepo repository.UserRepository
}

func NewBootstrapService(userRepo repository.UserRepository) BootstrapService {
	return &bootstrapService{userRepo: userRepo}
}

type seedAccount struct {
	name     string
	mobile   string
	password string
	role     domain.Role
}

var defaultAccounts = []seedAccount{
	{name: "Admin User", mobile: "9999999999", password: "admin123", role: domain.RoleAdmin},
	{name: "Collector One", mobile: "8888888888", password: "collector123", role: domain.RoleCollector},
	{name: "Test User", mobile: "7777777777", password: "user123", role: domain.RoleRequester},
}

// SeedDefaultAccounts creates one account per role unless the mobile is
// already taken. Safe to run on every start.
func (s *bootstrapService) SeedDefaultAccounts(ctx context.Context) error {
	for _, account := range defaultAccounts {
		existing, err := s.userRepo.GetByMobile(ctx, account.mobile)
		if err != nil {
			return persistenceError("look up seed account", err)
		}
		if existing != nil {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(account.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := &domain.User{
			Name:         account.name,
			Mobile:       account.mobile,
			PasswordHash: string(hash),
			Role:         account.role,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return persistenceError("create seed account", err)
		}
		logger.Info("Seeded default account", "mobile", account.mobile, "role", account.role)
	}
	return nil
}
