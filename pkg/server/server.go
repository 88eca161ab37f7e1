// Package server assembles the HTTP routes and middleware.
package server

import (
	"net/http"
	"strings"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/jordanlanch/calltracker/config"
	"github.com/jordanlanch/calltracker/ent"
	"github.com/jordanlanch/calltracker/pkg/api/handlers"
	"github.com/jordanlanch/calltracker/pkg/calltracking"
	"github.com/jordanlanch/calltracker/pkg/flash"
	"github.com/jordanlanch/calltracker/pkg/leadsource"
	"github.com/jordanlanch/calltracker/pkg/logger"
	"github.com/jordanlanch/calltracker/pkg/metrics"
	custommiddleware "github.com/jordanlanch/calltracker/pkg/middleware"
	"github.com/jordanlanch/calltracker/pkg/provisioning"
	"github.com/jordanlanch/calltracker/pkg/reporting"
	"github.com/jordanlanch/calltracker/pkg/twilio"
	"github.com/jordanlanch/calltracker/web"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// WebhookPath is the voice URL the provider application must point at
const WebhookPath = "/forward-call"

// Deps are the collaborators the server is built from
type Deps struct {
	Config     *config.Config
	DB         *ent.Client
	DBPinger   handlers.Pinger
	Redis      handlers.Pinger // nil when flash messages live in memory
	FlashStore flash.Store
	Provider   provisioning.NumberProvider
	Metrics    *metrics.Metrics
	Gatherer   prometheus.Gatherer
	Log        logger.Logger
}

// Server is the configured echo instance plus the resources it owns
type Server struct {
	Echo     *echo.Echo
	limiters []*custommiddleware.RateLimiter
}

// Close releases background resources. It does not stop the listener.
func (s *Server) Close() {
	for _, l := range s.limiters {
		l.Stop()
	}
}

// New builds the routes
func New(d Deps) (*Server, error) {
	cfg := d.Config
	region := cfg.TwilioCountry

	renderer, err := web.NewRenderer(region)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = handlers.NewValidator()

	s := &Server{Echo: e}

	apiLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	webhookLimiter := custommiddleware.NewRateLimiter(cfg.WebhookRequestsPerMinute, cfg.WebhookBurst,
		custommiddleware.WithDenyHandler(func(c echo.Context) error {
			body, _ := twilio.Render(twilio.Reject{Reason: "busy"})
			return c.Blob(http.StatusTooManyRequests, twilio.ContentType, []byte(body))
		}))
	s.limiters = append(s.limiters, apiLimiter, webhookLimiter)

	reqLog := d.Log.With("component", "http")

	// Global middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			args := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				reqLog.Error("request failed", append(args, "error", v.Error)...)
				return nil
			}
			reqLog.Info("request", args...)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}
	e.Use(d.Metrics.Middleware())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || strings.HasSuffix(c.Path(), ".xlsx")
		},
	}))
	e.Use(middleware.Secure())
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.SecurityHeadersConfig{
		Skipper: custommiddleware.SkipPaths(WebhookPath, "/metrics", "/health"),
	}))

	// Services
	leadSources := leadsource.NewService(d.DB, region)
	prov := provisioning.NewService(d.DB, d.Provider, cfg.TwilioAppSID, region, d.Log)
	calls := calltracking.NewService(d.DB, region)
	reports := reporting.NewService(d.DB)
	flashes := flash.NewManager(d.FlashStore, cfg.SessionCookieSecure, d.Log)

	// Handlers
	dashboardHandler := handlers.NewDashboardHandler(leadSources, flashes, cfg.DefaultAreaCode)
	numberHandler := handlers.NewNumberHandler(prov, flashes, d.Metrics, d.Log)
	leadSourceHandler := handlers.NewLeadSourceHandler(leadSources, flashes)
	callHandler := handlers.NewCallHandler(calls, d.Metrics, d.Log)
	reportHandler := handlers.NewReportHandler(reports)
	healthHandler := handlers.NewHealthHandler(d.DBPinger, d.Redis)

	var auth []echo.MiddlewareFunc
	if cfg.DashboardAuthEnabled() {
		auth = append(auth, custommiddleware.DashboardAuth(cfg.DashboardUser, cfg.DashboardPasswordHash))
	}

	csrf := middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup:    "form:csrf",
		CookieName:     "_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.SessionCookieSecure,
		CookieSameSite: http.SameSiteLaxMode,
	})

	// Browser routes
	browser := append(append([]echo.MiddlewareFunc{}, auth...), flashes.Middleware(), csrf)
	e.GET("/", dashboardHandler.Home, browser...)
	e.POST("/numbers/search", numberHandler.SearchNumbers, browser...)
	e.POST("/numbers/purchase", numberHandler.PurchaseNumber, browser...)
	e.GET("/lead-sources/:id/edit", leadSourceHandler.Edit, browser...)
	e.POST("/lead-sources/:id/edit", leadSourceHandler.Update, browser...)
	e.StaticFS("/static", web.Static())

	// Chart data and export
	api := append(append([]echo.MiddlewareFunc{}, auth...), apiLimiter.RateLimitMiddleware())
	e.GET("/leads-by-source", reportHandler.LeadsBySource, api...)
	e.GET("/leads-by-city", reportHandler.LeadsByCity, api...)
	e.GET("/leads/export.xlsx", reportHandler.ExportLeads, api...)

	// Provider webhook: no CSRF, no dashboard auth
	webhook := []echo.MiddlewareFunc{webhookLimiter.RateLimitMiddleware()}
	if cfg.TwilioValidateSignature {
		webhook = append(webhook, custommiddleware.TwilioSignature(cfg.TwilioAuthToken, cfg.PublicBaseURL, d.Log))
	}
	e.POST(WebhookPath, callHandler.ForwardCall, webhook...)

	// Operations
	e.GET("/health", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))

	return s, nil
}
