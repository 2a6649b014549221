package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	RouteIndex = "/"

	// Auth Routes - Login, Callback & Logout
	RouteAuthLogin  = "/auth"
	RouteCallback   = "/auth/callback"
	RouteAuthLogout = "/auth/logout"

	// Session Routes
	RouteTestSession = "/auth/test-session"
	RouteToken       = "/auth/token"
)
