package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "github.com/JSMaruthi/Dip-Final-Year-CSE/internal/api/http"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/domain"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/security"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/service"
)

const testSecret = "test-secret-test-secret-test-secret!"

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, mobile, password, role string) (*domain.User, string, error) {
	args := m.Called(ctx, name, mobile, password, role)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}
func (m *MockAuthService) Login(ctx context.Context, mobile, password string) (*domain.User, string, error) {
	args := m.Called(ctx, mobile, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}
func (m *MockAuthService) AdminLogin(ctx context.Context, mobile, password string) (*domain.User, string, error) {
	args := m.Called(ctx, mobile, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

// MockUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListCollectors(ctx context.Context, actor *domain.User) ([]domain.User, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockRequestService
type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) Create(ctx context.Context, actor *domain.User, params service.CreateRequestParams) (*domain.PickupRequest, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PickupRequest), args.Error(1)
}
func (m *MockRequestService) AdminSetStatus(ctx context.Context, actor *domain.User, requestID, status, collectorID string) (*domain.PickupRequest, error) {
	args := m.Called(ctx, actor, requestID, status, collectorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PickupRequest), args.Error(1)
}
func (m *MockRequestService) CollectorSetStatus(ctx context.Context, actor *domain.User, requestID, status string) (*domain.PickupRequest, error) {
	args := m.Called(ctx, actor, requestID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PickupRequest), args.Error(1)
}
func (m *MockRequestService) List(ctx context.Context, actor *domain.User) ([]domain.PickupRequest, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PickupRequest), args.Error(1)
}
func (m *MockRequestService) ListAll(ctx context.Context, actor *domain.User) ([]domain.PickupRequest, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PickupRequest), args.Error(1)
}
func (m *MockRequestService) ListTransactions(ctx context.Context, requestID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// MockAnalyticsService
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Summarize(ctx context.Context, actor *domain.User) (*domain.AnalyticsSummary, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalyticsSummary), args.Error(1)
}

// MockUserFinder backs the auth middleware's user lookup.
type MockUserFinder struct {
	mock.Mock
}

func (m *MockUserFinder) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserFinder) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserFinder) GetByMobile(ctx context.Context, mobile string) (*domain.User, error) {
	args := m.Called(ctx, mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserFinder) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type testServer struct {
	router       http.Handler
	auth         *MockAuthService
	users        *MockUserService
	requests     *MockRequestService
	analytics    *MockAnalyticsService
	userFinder   *MockUserFinder
	tokenManager security.TokenManager
}

func newTestServer() *testServer {
	s := &testServer{
		auth:         new(MockAuthService),
		users:        new(MockUserService),
		requests:     new(MockRequestService),
		analytics:    new(MockAnalyticsService),
		userFinder:   new(MockUserFinder),
		tokenManager: security.NewTokenManager(testSecret),
	}
	handlers := httpapi.Handlers{
		Auth:      httpapi.NewAuthHandler(s.auth),
		Users:     httpapi.NewUserHandler(s.users),
		Requests:  httpapi.NewRequestHandler(s.requests),
		Analytics: httpapi.NewAnalyticsHandler(s.analytics),
	}
	middleware := httpapi.NewAuthMiddleware(s.tokenManager, s.userFinder)
	s.router = httpapi.CORSMiddleware([]string{"http://localhost:3000"})(httpapi.NewRouter(handlers, middleware))
	return s
}

// loginAs issues a token for the user and primes the middleware lookup.
func (s *testServer) loginAs(t *testing.T, user *domain.User) string {
	t.Helper()
	token, err := s.tokenManager.GenerateToken(user.ID, user.Role)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	s.userFinder.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	return token
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Root(t *testing.T) {
	s := newTestServer()

	rec := s.do("GET", "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "E-Waste Management System API")
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("MissingToken", func(t *testing.T) {
		s := newTestServer()

		rec := s.do("GET", "/api/requests", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		s := newTestServer()

		rec := s.do("GET", "/api/requests", "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("TokenForDeletedUser", func(t *testing.T) {
		s := newTestServer()
		token, err := s.tokenManager.GenerateToken("ghost", domain.RoleRequester)
		assert.NoError(t, err)
		s.userFinder.On("GetByID", mock.Anything, "ghost").Return(nil, nil)

		rec := s.do("GET", "/api/requests", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequestEndpoints(t *testing.T) {
	requester := &domain.User{ID: "u1", Name: "Test User", Role: domain.RoleRequester}
	admin := &domain.User{ID: "a1", Name: "Admin User", Role: domain.RoleAdmin}

	t.Run("CreateSuccess", func(t *testing.T) {
		s := newTestServer()
		token := s.loginAs(t, requester)

		s.requests.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool { return u.ID == "u1" }), service.CreateRequestParams{
			Description:   "Old laptop",
			Quantity:      "1",
			PickupAddress: "12 Main St",
			ContactInfo:   "7777777777",
		}).Return(&domain.PickupRequest{ID: "r1", UserID: "u1", Status: domain.StatusSubmitted}, nil)

		rec := s.do("POST", "/api/requests", token, map[string]string{
			"description":    "Old laptop",
			"quantity":       "1",
			"pickup_address": "12 Main St",
			"contact_info":   "7777777777",
		})
		assert.Equal(t, http.StatusOK, rec.Code)

		var req domain.PickupRequest
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &req))
		assert.Equal(t, "r1", req.ID)
		assert.Equal(t, domain.StatusSubmitted, req.Status)
	})

	t.Run("CreateForbiddenMapsTo403", func(t *testing.T) {
		s := newTestServer()
		collector := &domain.User{ID: "c1", Role: domain.RoleCollector}
		token := s.loginAs(t, collector)

		s.requests.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: only users can create requests", domain.ErrForbidden))

		rec := s.do("POST", "/api/requests", token, map[string]string{"description": "x"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "detail")
	})

	t.Run("AdminUpdateNotFoundMapsTo404", func(t *testing.T) {
		s := newTestServer()
		token := s.loginAs(t, admin)

		s.requests.On("AdminSetStatus", mock.Anything, mock.Anything, "nope", "assigned", "c1").
			Return(nil, fmt.Errorf("%w: request nope", domain.ErrNotFound))

		rec := s.do("PUT", "/api/admin/requests/nope", token, map[string]string{
			"status":                "assigned",
			"assigned_collector_id": "c1",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("AdminUpdateSuccess", func(t *testing.T) {
		s := newTestServer()
		token := s.loginAs(t, admin)

		s.requests.On("AdminSetStatus", mock.Anything, mock.Anything, "r1", "assigned", "c1").
			Return(&domain.PickupRequest{ID: "r1", Status: domain.StatusAssigned}, nil)

		rec := s.do("PUT", "/api/admin/requests/r1", token, map[string]string{
			"status":                "assigned",
			"assigned_collector_id": "c1",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Request updated successfully")
	})

	t.Run("CollectorUpdateInvalidStatusMapsTo400", func(t *testing.T) {
		s := newTestServer()
		collector := &domain.User{ID: "c1", Role: domain.RoleCollector}
		token := s.loginAs(t, collector)

		s.requests.On("CollectorSetStatus", mock.Anything, mock.Anything, "r1", "recycled").
			Return(nil, fmt.Errorf("%w: unknown status", domain.ErrInvalidInput))

		rec := s.do("PUT", "/api/collector/requests/r1", token, map[string]string{"status": "recycled"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ListTransactions", func(t *testing.T) {
		s := newTestServer()
		token := s.loginAs(t, requester)

		s.requests.On("ListTransactions", mock.Anything, "r1").
			Return([]domain.Transaction{{ID: "t1", RequestID: "r1", Action: "Request created"}}, nil)

		rec := s.do("GET", "/api/transactions/r1", token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var transactions []domain.Transaction
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &transactions))
		assert.Len(t, transactions, 1)
	})
}

func TestAnalyticsEndpoint(t *testing.T) {
	admin := &domain.User{ID: "a1", Role: domain.RoleAdmin}

	s := newTestServer()
	token := s.loginAs(t, admin)

	s.analytics.On("Summarize", mock.Anything, mock.Anything).Return(&domain.AnalyticsSummary{
		TotalRequests:      5,
		PendingRequests:    2,
		InProgressRequests: 1,
		CompletedRequests:  2,
	}, nil)

	rec := s.do("GET", "/api/admin/analytics", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var summary domain.AnalyticsSummary
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, int64(5), summary.TotalRequests)
}

func TestAuthEndpoints(t *testing.T) {
	t.Run("RegisterSuccess", func(t *testing.T) {
		s := newTestServer()

		user := &domain.User{ID: "u9", Name: "New User", Mobile: "1234567890", Role: domain.RoleRequester}
		s.auth.On("Register", mock.Anything, "New User", "1234567890", "secret", "").
			Return(user, "signed-token", nil)

		rec := s.do("POST", "/api/register", "", map[string]string{
			"name":     "New User",
			"mobile":   "1234567890",
			"password": "secret",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "signed-token")
	})

	t.Run("LoginBadCredentialsMapsTo401", func(t *testing.T) {
		s := newTestServer()

		s.auth.On("Login", mock.Anything, "1234567890", "wrong").
			Return(nil, "", fmt.Errorf("%w: invalid mobile number or password", domain.ErrUnauthenticated))

		rec := s.do("POST", "/api/login", "", map[string]string{
			"mobile":   "1234567890",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("PasswordHashNeverSerialized", func(t *testing.T) {
		s := newTestServer()

		user := &domain.User{ID: "u9", Mobile: "1234567890", PasswordHash: "bcrypt-hash", Role: domain.RoleRequester}
		s.auth.On("Login", mock.Anything, "1234567890", "secret").Return(user, "signed-token", nil)

		rec := s.do("POST", "/api/login", "", map[string]string{
			"mobile":   "1234567890",
			"password": "secret",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "bcrypt-hash")
	})
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodOptions, "/api/requests", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
