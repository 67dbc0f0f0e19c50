package cmd

import (
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/dealer-appraisal/api/openapi"
	"github.com/donaldgifford/dealer-appraisal/internal/api/handlers"
	"github.com/donaldgifford/dealer-appraisal/internal/api/middleware"
	"github.com/donaldgifford/dealer-appraisal/internal/config"
	"github.com/donaldgifford/dealer-appraisal/internal/store"
)

const apiTitle = "Dealer Appraisal API"

// appraisalPrefix is the path throttled by the rate limiter.
const appraisalPrefix = "/api/v1/appraisals"

// routerDeps are the collaborators the HTTP surface needs.
type routerDeps struct {
	store      store.Store
	appraiser  handlers.Appraiser
	names      handlers.NameInvalidator
	log        *slog.Logger
	rateLimit  config.RateLimitConfig
	tracer     trace.TracerProvider
	propagator propagation.TextMapPropagator
}

// newRouter builds the Echo server with middleware, probes, metrics and the
// Huma API mounted on it.
func newRouter(d *routerDeps) (*echo.Echo, huma.API) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLog(d.log))
	e.Use(middleware.Recovery(d.log))
	e.Use(middleware.Tracing(d.tracer, d.propagator))
	e.Use(middleware.Metrics())
	if d.rateLimit.Enabled {
		rl := middleware.NewRateLimiter(d.rateLimit.PerSecond, d.rateLimit.Burst)
		e.Use(rl.Middleware(appraisalPrefix))
	}

	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(d.store))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	openapi.RegisterRoutes(e)

	api := newAPI(e)

	dealerOpts := []handlers.DealershipsOption{handlers.WithDealershipsLogger(d.log)}
	if d.names != nil {
		dealerOpts = append(dealerOpts, handlers.WithNameInvalidator(d.names))
	}

	handlers.RegisterAppraisalRoutes(api, handlers.NewAppraisalsHandler(d.appraiser))
	handlers.RegisterDealershipRoutes(api, handlers.NewDealershipsHandler(d.store, dealerOpts...))
	handlers.RegisterVehicleRoutes(api, handlers.NewVehiclesHandler(d.store))

	return e, api
}

func newAPI(e *echo.Echo) huma.API {
	cfg := huma.DefaultConfig(apiTitle, Version)
	cfg.Info.Description = "Values trade-in vehicles against dealership inventory."
	return humaecho.New(e, cfg)
}
