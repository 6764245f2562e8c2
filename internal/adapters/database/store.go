// Package database implements the repository ports on top of a relational
// database accessed through sqlx. It supports MySQL (the default), PostgreSQL
// and SQLite, selected by configuration.
//
// Every repository call runs through Store.withConn, which applies in order:
//
//	Circuit Breaker → OTEL Span → Acquire Connection → Query → Release → Metrics
//
// Each call owns a dedicated connection for its lifetime and releases it on
// every exit path. Driver errors are translated to domain sentinels by
// TranslateDBError before they leave the package.
//
// Construction:
//
//	store, err := database.New(&cfg.Database, metrics, logger)
//	colleges := database.NewCollegeRepository(store)
//	users := database.NewUserRepository(store)
package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/college-predictor/internal/domain"
	"github.com/jsamuelsen11/college-predictor/internal/platform/config"
	"github.com/jsamuelsen11/college-predictor/internal/platform/telemetry"
)

// healthName identifies the store in the health registry, traces and metrics.
const healthName = "database"

// Store owns the sqlx handle and the circuit breaker shared by the repositories.
type Store struct {
	db       *sqlx.DB
	system   string
	bindType int
	breaker  *gobreaker.CircuitBreaker[struct{}]
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// New opens a handle for the configured driver. No connection is made until
// the first query, so an unreachable server is reported per call as
// domain.ErrUnavailable rather than failing startup.
//
// If metrics is nil, metric recording is skipped. A nil logger discards output.
func New(cfg *config.DatabaseConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	driverName, dsn, err := DataSource(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        healthName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		// Only an unreachable database counts against the breaker; constraint
		// violations and bad queries leave it closed.
		IsSuccessful: func(err error) bool {
			return !errors.Is(err, domain.ErrUnavailable)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Store{
		db:       db,
		system:   cfg.Driver,
		bindType: sqlx.BindType(driverName),
		breaker:  cb,
		metrics:  metrics,
		logger:   logger,
	}, nil
}

// Close releases the underlying handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (s *Store) Name() string {
	return healthName
}

// HealthCheck reports database availability based on the circuit breaker
// state; no network call is made.
//
// State mapping:
//   - "closed"    -- queries are reaching the database; returns nil.
//   - "half-open" -- the breaker is probing recovery; returns a degraded error.
//   - "open"      -- recent connection attempts failed and queries are being
//     rejected; returns a failing error.
func (s *Store) HealthCheck(_ context.Context) error {
	state := s.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", healthName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", healthName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", healthName, state)
	}
}

// withConn runs fn on a dedicated connection inside the circuit breaker and
// a client span. The connection is returned to database/sql before withConn
// returns; with max_idle_conns at 0 it is closed outright.
func (s *Store) withConn(ctx context.Context, op string, fn func(ctx context.Context, conn *sqlx.Conn) error) error {
	start := time.Now()

	spanCtx, span := s.startSpan(ctx, op)
	defer span.End()

	_, err := s.breaker.Execute(func() (struct{}, error) {
		conn, err := s.db.Connx(spanCtx)
		if err != nil {
			return struct{}{}, fmt.Errorf("acquiring connection: %w: %w", domain.ErrUnavailable, err)
		}
		defer s.release(spanCtx, op, conn)

		return struct{}{}, TranslateDBError(fn(spanCtx, conn))
	})
	err = TranslateDBError(err)

	s.finishSpan(span, err)
	s.recordMetrics(ctx, op, start, err)

	return err
}

func (s *Store) release(ctx context.Context, op string, conn *sqlx.Conn) {
	if err := conn.Close(); err != nil {
		s.logger.WarnContext(ctx, "failed to release connection",
			slog.String("operation", op),
			slog.Any("error", err),
		)
	}
}

func (s *Store) startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("database")

	return tracer.Start(ctx, "db "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", s.system),
			attribute.String("db.operation", op),
		),
	)
}

func (s *Store) finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics records operation duration and count. Metrics are recorded
// outside the circuit breaker so that rejections are captured. Safe to call
// with nil metrics.
func (s *Store) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(s.system),
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrResult.String(resultLabel(err)),
	)

	s.metrics.DBOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.DBOperationTotal.Add(ctx, 1, attrs)
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case errors.Is(err, domain.ErrUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
