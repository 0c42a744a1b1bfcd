package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/domain"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/repository"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/security"
)

type authService struct {
	userRepo     repository.UserRepository
	tokenManager security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokenManager security.TokenManager) AuthService {
	return &authService{
		userRepo:     userRepo,
		tokenManager: tokenManager,
	}
}

func (s *authService) Register(ctx context.Context, name, mobile, password, role string) (*domain.User, string, error) {
	if name == "" || mobile == "" || password == "" {
		return nil, "", fmt.Errorf("%w: name, mobile and password are required", domain.ErrInvalidInput)
	}
	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return nil, "", fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}

	existing, err := s.userRepo.GetByMobile(ctx, mobile)
	if err != nil {
		return nil, "", persistenceError("look up mobile", err)
	}
	if existing != nil {
		return nil, "", fmt.Errorf("%w: mobile number already registered", domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:         name,
		Mobile:       mobile,
		PasswordHash: string(hash),
		Role:         parsedRole,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", persistenceError("create user", err)
	}

	token, err := s.tokenManager.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, mobile, password string) (*domain.User, string, error) {
	return s.login(ctx, mobile, password, "")
}

// AdminLogin only matches accounts carrying the admin role; a valid password
// on a non-admin account still fails.
func (s *authService) AdminLogin(ctx context.Context, mobile, password string) (*domain.User, string, error) {
	return s.login(ctx, mobile, password, domain.RoleAdmin)
}

func (s *authService) login(ctx context.Context, mobile, password string, requiredRole domain.Role) (*domain.User, string, error) {
	user, err := s.userRepo.GetByMobile(ctx, mobile)
	if err != nil {
		return nil, "", persistenceError("look up mobile", err)
	}
	if user == nil {
		return nil, "", fmt.Errorf("%w: invalid mobile number or password", domain.ErrUnauthenticated)
	}
	if requiredRole != "" && user.Role != requiredRole {
		return nil, "", fmt.Errorf("%w: invalid admin credentials", domain.ErrUnauthenticated)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("%w: invalid mobile number or password", domain.ErrUnauthenticated)
	}

	token, err := s.tokenManager.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
