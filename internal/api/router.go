package api

import (
	"context"
	"net/http"
	"time"

	"github.com/AlexZinkM/stellar-donate/internal/handler"
	"github.com/AlexZinkM/stellar-donate/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"
)

// unmatchedRoute labels requests that match no route
const unmatchedRoute = "unmatched"

// Options tune the router
type Options struct {
	// FaucetPerMinute limits faucet requests per client; 0 disables the limit.
	FaucetPerMinute int
	Logger          logrus.FieldLogger
	// Context bounds background work such as limiter cleanup. Defaults to context.Background.
	Context context.Context
}

// SetupRouter sets up router with handlers
func SetupRouter(h *handler.StellarHandler, opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Get("/wallet", h.WalletState)
	r.Post("/wallet/connect", h.Connect)
	r.Post("/keypair", h.Keypair)
	r.Post("/conversion", h.Conversion)
	r.Post("/donate", h.Donate)
	r.Post("/trustline", h.ChangeTrust)

	r.Group(func(r chi.Router) {
		if opts.FaucetPerMinute > 0 {
			limiter := NewRateLimiter(opts.FaucetPerMinute, time.Minute, log)
			limiter.StartCleanup(ctx, time.Minute)
			r.Use(limiter.Handler)
		}
		r.Post("/faucet", h.Fund)
	})

	return r
}

// requestLogger logs each request and records it in the HTTP metrics
func requestLogger(log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			elapsed := time.Since(start)
			metrics.RecordHTTPRequest(r.Method, route, status, elapsed)

			log.WithFields(logrus.Fields{
				"request_id": middleware.GetReqID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     status,
				"duration":   elapsed.String(),
			}).Info("request handled")
		})
	}
}
