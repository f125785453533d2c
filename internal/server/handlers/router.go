package handlers

import (
	"net/http"
)

// Middleware transforms an http.Handler, typically by wrapping it.
type Middleware func(http.Handler) http.Handler

// RouterDeps bundles the handlers and middleware the router wires together.
type RouterDeps struct {
	Auth     *AuthHandler
	User     *UserHandler
	Color    *ColorHandler
	Vehicle  *VehicleHandler
	Health   *HealthHandler
	AuthMW   Middleware
	Recovery Middleware
	Logging  Middleware
}

// NewRouter builds the HTTP mux. The auth endpoints and color reference
// data are public; profile and vehicle routes require a bearer token.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", deps.Health.Health)

	mux.HandleFunc("POST /api/auth/register", deps.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", deps.Auth.Login)
	mux.HandleFunc("POST /api/auth/refresh-token", deps.Auth.RefreshToken)

	mux.HandleFunc("GET /api/colors", deps.Color.List)
	mux.HandleFunc("GET /api/colors/{id}", deps.Color.Get)

	mux.Handle("GET /api/user", deps.AuthMW(http.HandlerFunc(deps.User.Get)))
	mux.Handle("PUT /api/user/profile", deps.AuthMW(http.HandlerFunc(deps.User.UpdateProfile)))

	mux.Handle("GET /api/vehicles", deps.AuthMW(http.HandlerFunc(deps.Vehicle.List)))
	mux.Handle("POST /api/vehicles", deps.AuthMW(http.HandlerFunc(deps.Vehicle.Create)))
	mux.Handle("GET /api/vehicles/{id}", deps.AuthMW(http.HandlerFunc(deps.Vehicle.Get)))
	mux.Handle("PUT /api/vehicles/{id}", deps.AuthMW(http.HandlerFunc(deps.Vehicle.Update)))
	mux.Handle("DELETE /api/vehicles/{id}", deps.AuthMW(http.HandlerFunc(deps.Vehicle.Delete)))

	var handler http.Handler = mux
	if deps.Logging != nil {
		handler = deps.Logging(handler)
	}
	if deps.Recovery != nil {
		handler = deps.Recovery(handler)
	}
	return handler
}
