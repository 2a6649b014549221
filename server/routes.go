package server

func (s *Server) initRoutes() {
	s.RegisterRouteHandler("GET "+RouteIndex, ChainMiddleware(s.IndexHandler(), s.StdMiddleware()...))

	// LOGIN
	s.RegisterRouteHandler("GET "+RouteAuthLogin, ChainMiddleware(s.StartLoginHandler(), s.StdMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteCallback, ChainMiddleware(s.OAuthCallbackHandler(), s.StdMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteCallback, ChainMiddleware(s.OAuthCallbackHandler(), s.StdMiddleware()...)) // For form_post response mode
	s.RegisterRouteHandler("GET "+RouteAuthLogout, ChainMiddleware(s.LogoutHandler(), s.StdMiddleware()...))

	// SESSION
	s.RegisterRouteHandler("GET "+RouteTestSession, ChainMiddleware(s.TestSessionHandler(), s.StdMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteToken, ChainMiddleware(s.TokenHandler(), s.StdMiddleware()...))
}
