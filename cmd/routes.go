package cmd

import (
	"net/http"

	"strokescan/internal/http/handler"
	"strokescan/internal/http/handler/middleware"
	"strokescan/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// newRouter registers every route and wraps the mux in the middleware chain.
// The metrics middleware sits directly around the mux so it sees the matched pattern.
func newRouter(
	logger *zap.SugaredLogger,
	pages *handler.PageHandler,
	resolver middleware.SessionResolver,
	cookie middleware.SessionCookie,
	appMetrics *metrics.Metrics,
	gatherer prometheus.Gatherer,
) http.Handler {
	sessions := middleware.NewSessionMiddleware(logger, resolver, cookie)
	signedIn := func(h http.HandlerFunc) http.Handler { return sessions.RequireSession(h) }
	adminOnly := func(h http.HandlerFunc) http.Handler { return sessions.RequireAdmin(h) }

	// register routes
	mux := http.NewServeMux()
	mux.HandleFunc(handler.Root, pages.HandleLanding)
	mux.HandleFunc(handler.Landing, pages.HandleLanding)
	mux.HandleFunc(handler.Home, pages.HandleHome)
	mux.HandleFunc(handler.SignupPage, pages.HandleSignupPage)
	mux.HandleFunc(handler.Signup, pages.HandleSignup)
	mux.HandleFunc(handler.LoginPage, pages.HandleLoginPage)
	mux.HandleFunc(handler.Login, pages.HandleLogin)
	mux.HandleFunc(handler.Logout, pages.HandleLogout)
	mux.Handle(handler.UploadPage, signedIn(pages.HandleUploadPage))
	mux.Handle(handler.Upload, signedIn(pages.HandleUpload))
	mux.Handle(handler.Uploads, signedIn(pages.HandleUploads))
	mux.Handle(handler.LandingAdmin, adminOnly(pages.HandleLandingAdmin))
	mux.Handle(handler.AdminPage, adminOnly(pages.HandleAdmin))
	mux.Handle(handler.RemoveUser, adminOnly(pages.HandleRemoveUser))
	mux.Handle(handler.Metrics, metrics.Handler(gatherer))
	mux.HandleFunc(handler.Health, pages.HandleHealth)

	// middleware
	hdlr := middleware.NewMetricsMiddleware(appMetrics).Metrics(mux)
	hdlr = sessions.Session(hdlr)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	return hdlr
}
