// Package engine runs appraisals for the API: it validates requests, loads
// the comparable pool and dealership names, and hands everything to the
// pure valuation core in pkg/appraise.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/dealer-appraisal/internal/metrics"
	"github.com/donaldgifford/dealer-appraisal/pkg/appraise"
)

const tracerName = "github.com/donaldgifford/dealer-appraisal/internal/engine"

// DealerDirectory resolves dealership IDs to display names.
type DealerDirectory interface {
	DealershipNames(ctx context.Context, ids []string) (map[string]string, error)
}

// Engine orchestrates appraisal requests.
type Engine struct {
	comparables ComparableSource
	dealers     DealerDirectory
	appraiser   *appraise.Appraiser
	policy      appraise.Policy
	timeout     time.Duration
	log         *slog.Logger
	tracer      trace.Tracer
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(c ComparableSource, d DealerDirectory, opts ...EngineOption) *Engine {
	eng := &Engine{
		comparables: c,
		dealers:     d,
		appraiser:   appraise.New(),
		policy:      appraise.DefaultPolicy(),
		log:         slog.Default(),
		tracer:      otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithAppraiser replaces the valuation core, e.g. to fix the clock in tests.
func WithAppraiser(a *appraise.Appraiser) EngineOption {
	return func(e *Engine) {
		e.appraiser = a
	}
}

// WithPolicy sets the business policy used when a request carries none.
func WithPolicy(p appraise.Policy) EngineOption {
	return func(e *Engine) {
		e.policy = p
	}
}

// WithTimeout bounds the inventory and dealer lookups of one appraisal.
// Zero means no bound beyond the caller's context.
func WithTimeout(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.timeout = d
	}
}

// WithTracer sets the tracer used for appraisal spans.
func WithTracer(t trace.Tracer) EngineOption {
	return func(e *Engine) {
		e.tracer = t
	}
}

// Appraise validates the request, gathers comparables and dealer names, and
// values the vehicle. Validation failures wrap ErrMissingField or
// ErrInvalidField.
func (eng *Engine) Appraise(ctx context.Context, req *Request) (*appraise.Result, error) {
	ctx, span := eng.tracer.Start(ctx, "engine.Appraise")
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.AppraisalDuration.Observe(time.Since(start).Seconds())
	}()

	if err := req.Validate(); err != nil {
		metrics.AppraisalErrorsTotal.WithLabelValues("validation").Inc()
		span.SetStatus(codes.Error, "validation failed")
		return nil, err
	}

	in := req.input(eng.policy)
	span.SetAttributes(
		attribute.String("vehicle.make", in.Vehicle.Make),
		attribute.String("vehicle.model", in.Vehicle.Model),
		attribute.Int("vehicle.year", in.Vehicle.Year),
		attribute.String("vehicle.province", in.Vehicle.Province),
	)

	lookupCtx := ctx
	if eng.timeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, eng.timeout)
		defer cancel()
	}

	comps, err := eng.loadComparables(lookupCtx, in.Vehicle.Make, in.Vehicle.Model)
	if err != nil {
		metrics.AppraisalErrorsTotal.WithLabelValues("inventory").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "loading comparables")
		return nil, err
	}
	in.Comparables = comps
	in.DealerNames = eng.dealerNames(lookupCtx, comps)

	result := eng.valuate(ctx, in)

	metrics.AppraisalsTotal.WithLabelValues(string(result.Decision), string(result.ValuationMethod)).Inc()
	metrics.AppraisalComparables.Observe(float64(result.MarketIntelligence.TotalComparables))
	metrics.AppraisalConfidence.Observe(result.Confidence)
	metrics.TradeInOfferDollars.Observe(result.TradeInOffer)

	span.SetAttributes(
		attribute.String("appraisal.decision", string(result.Decision)),
		attribute.String("appraisal.method", string(result.ValuationMethod)),
		attribute.Int("appraisal.comparables", result.MarketIntelligence.TotalComparables),
		attribute.Float64("appraisal.trade_in_offer", result.TradeInOffer),
	)

	eng.log.Info("appraisal completed",
		"make", in.Vehicle.Make,
		"model", in.Vehicle.Model,
		"year", in.Vehicle.Year,
		"decision", result.Decision,
		"method", result.ValuationMethod,
		"comparables", result.MarketIntelligence.TotalComparables,
		"trade_in_offer", result.TradeInOffer,
	)

	return result, nil
}

func (eng *Engine) loadComparables(ctx context.Context, vehicleMake, model string) ([]appraise.Comparable, error) {
	ctx, span := eng.tracer.Start(ctx, "engine.loadComparables")
	defer span.End()

	comps, err := eng.comparables.Comparables(ctx, vehicleMake, model)
	if err != nil {
		return nil, fmt.Errorf("loading comparables: %w", err)
	}
	span.SetAttributes(attribute.Int("comparables.pool", len(comps)))
	return comps, nil
}

func (eng *Engine) valuate(ctx context.Context, in *appraise.Input) *appraise.Result {
	_, span := eng.tracer.Start(ctx, "engine.valuate")
	defer span.End()

	result := eng.appraiser.Appraise(in)
	span.SetAttributes(
		attribute.String("appraisal.method", string(result.ValuationMethod)),
		attribute.Float64("appraisal.confidence", result.Confidence),
	)
	return result
}

// dealerNames resolves the dealerships behind comps. Names are display-only,
// so a lookup failure is logged and the comparables show as unknown.
func (eng *Engine) dealerNames(ctx context.Context, comps []appraise.Comparable) map[string]string {
	if eng.dealers == nil || len(comps) == 0 {
		return nil
	}

	ctx, span := eng.tracer.Start(ctx, "engine.dealerNames")
	defer span.End()

	seen := make(map[string]struct{}, len(comps))
	ids := make([]string, 0, len(comps))
	for i := range comps {
		id := comps[i].DealershipID
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil
	}

	names, err := eng.dealers.DealershipNames(ctx, ids)
	if err != nil {
		span.RecordError(err)
		eng.log.Warn("resolving dealership names failed", "error", err, "dealerships", len(ids))
		return nil
	}
	return names
}

// IsValidation reports whether err is a request validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingField) || errors.Is(err, ErrInvalidField)
}
