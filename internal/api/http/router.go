package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/service"
)

// Handlers bundles the API surface handed to the router.
type Handlers struct {
	Auth      *AuthHandler
	Users     *UserHandler
	Requests  *RequestHandler
	Analytics *AnalyticsHandler
}

func NewHandlers(authSvc service.AuthService, userSvc service.UserService, requestSvc service.RequestService, analyticsSvc service.AnalyticsService) Handlers {
	return Handlers{
		Auth:      NewAuthHandler(authSvc),
		Users:     NewUserHandler(userSvc),
		Requests:  NewRequestHandler(requestSvc),
		Analytics: NewAnalyticsHandler(analyticsSvc),
	}
}

// NewRouter builds the route table. Role checks live in the service layer;
// the auth middleware only resolves the actor. Wrap the returned router with
// CORSMiddleware so preflight requests are answered before route matching.
func NewRouter(h Handlers, auth *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, messageResponse{Message: "E-Waste Management System API"})
	}).Methods("GET")

	// Public
	r.HandleFunc("/api/register", h.Auth.Register).Methods("POST")
	r.HandleFunc("/api/login", h.Auth.Login).Methods("POST")
	r.HandleFunc("/api/admin/login", h.Auth.AdminLogin).Methods("POST")

	// Authenticated
	r.HandleFunc("/api/profile", auth.Wrap(h.Users.Profile)).Methods("GET")
	r.HandleFunc("/api/requests", auth.Wrap(h.Requests.Create)).Methods("POST")
	r.HandleFunc("/api/requests", auth.Wrap(h.Requests.List)).Methods("GET")
	r.HandleFunc("/api/admin/requests", auth.Wrap(h.Requests.ListAll)).Methods("GET")
	r.HandleFunc("/api/admin/requests/{id}", auth.Wrap(h.Requests.AdminUpdate)).Methods("PUT")
	r.HandleFunc("/api/collector/requests/{id}", auth.Wrap(h.Requests.CollectorUpdate)).Methods("PUT")
	r.HandleFunc("/api/collectors", auth.Wrap(h.Users.ListCollectors)).Methods("GET")
	r.HandleFunc("/api/transactions/{request_id}", auth.Wrap(h.Requests.ListTransactions)).Methods("GET")
	r.HandleFunc("/api/admin/analytics", auth.Wrap(h.Analytics.Summary)).Methods("GET")

	return r
}
