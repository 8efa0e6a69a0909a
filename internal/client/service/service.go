// Package service is the application layer over the client record domain.
//
// It adds what the domain deliberately leaves out: a span per operation,
// outcome counters and a log line for every rejected input. Results and errors
// from the domain are returned unchanged.
package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"clientrec/internal/client/domain/record"
	"clientrec/internal/client/input"
	"clientrec/internal/client/metrics"
	"clientrec/internal/client/tracer"
	dErrors "clientrec/pkg/domain-errors"
)

// Service constructs and merges client records on behalf of a caller.
type Service struct {
	tracer           tracer.Tracer
	metrics          *metrics.Metrics
	logger           *slog.Logger
	maxDocumentBytes int64
	newIntakeID      func() string
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics enables intake counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer sets the tracer. The default is a no-op tracer.
func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithMaxDocumentBytes bounds JSON files whose input does not set its own limit.
func WithMaxDocumentBytes(n int64) Option {
	return func(s *Service) {
		s.maxDocumentBytes = n
	}
}

// New creates a Service.
func New(opts ...Option) *Service {
	s := &Service{
		maxDocumentBytes: input.DefaultMaxDocumentBytes,
		newIntakeID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tracer == nil {
		s.tracer = tracer.NewNoop()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// ParseShort constructs a ShortRecord from in.
func (s *Service) ParseShort(ctx context.Context, in input.Input) (*record.ShortRecord, error) {
	rec, err := s.Parse(ctx, record.KindShort, in)
	if err != nil {
		return nil, err
	}
	return rec.(*record.ShortRecord), nil
}

// ParseFull constructs a FullRecord from in.
func (s *Service) ParseFull(ctx context.Context, in input.Input) (*record.FullRecord, error) {
	rec, err := s.Parse(ctx, record.KindFull, in)
	if err != nil {
		return nil, err
	}
	return rec.(*record.FullRecord), nil
}

// Parse constructs a record of the given kind from in.
func (s *Service) Parse(ctx context.Context, kind record.Kind, in input.Input) (rec record.Record, err error) {
	intakeID := s.newIntakeID()
	shape := shapeOf(in)

	ctx, span := s.tracer.Start(ctx, spanFor(kind),
		tracer.String(tracer.AttrIntakeID, intakeID),
		tracer.String(tracer.AttrKind, string(kind)),
		tracer.String(tracer.AttrShape, shape),
	)
	defer func() { span.End(err) }()

	rec, err = record.New(kind, s.withLimit(in))
	if err != nil {
		code := string(dErrors.CodeOf(err))
		field := dErrors.FieldOf(err)
		span.SetAttributes(
			tracer.String(tracer.AttrErrorCode, code),
			tracer.String(tracer.AttrField, field),
		)
		if s.metrics != nil {
			s.metrics.RecordRejected(string(kind), shape, code)
		}
		s.logger.WarnContext(ctx, "client record rejected",
			"intake_id", intakeID,
			"kind", kind,
			"shape", shape,
			"code", code,
			"field", field,
			"error", err,
		)
		return nil, err
	}

	if kind == record.KindFull {
		span.AddEvent(tracer.EventInitialsDerived)
	}
	span.SetAttributes(tracer.String(tracer.AttrClientID, tracer.HashClientID(rec.ID())))
	if s.metrics != nil {
		s.metrics.RecordConstructed(string(kind), shape)
	}
	s.logger.DebugContext(ctx, "client record constructed",
		"intake_id", intakeID,
		"kind", kind,
		"shape", shape,
	)
	return rec, nil
}

// Merge combines two full records; see record.Merge.
func (s *Service) Merge(ctx context.Context, a, b record.Record) (merged *record.FullRecord, err error) {
	intakeID := s.newIntakeID()
	ctx, span := s.tracer.Start(ctx, tracer.SpanMerge, tracer.String(tracer.AttrIntakeID, intakeID))
	defer func() { span.End(err) }()

	merged, err = record.Merge(a, b)
	if s.metrics != nil {
		s.metrics.RecordMerge(err == nil)
	}
	if err != nil {
		span.SetAttributes(tracer.String(tracer.AttrErrorCode, string(dErrors.CodeOf(err))))
		s.logger.WarnContext(ctx, "client record merge rejected",
			"intake_id", intakeID,
			"code", dErrors.CodeOf(err),
			"error", err,
		)
		return nil, err
	}
	span.SetAttributes(tracer.String(tracer.AttrClientID, tracer.HashClientID(merged.ID())))
	return merged, nil
}

func (s *Service) withLimit(in input.Input) input.Input {
	if f, ok := in.(input.File); ok && f.MaxBytes <= 0 {
		f.MaxBytes = s.maxDocumentBytes
		return f
	}
	return in
}

func shapeOf(in input.Input) string {
	if in == nil {
		return "none"
	}
	return string(in.Shape())
}

func spanFor(kind record.Kind) string {
	if kind == record.KindFull {
		return tracer.SpanParseFull
	}
	return tracer.SpanParseShort
}
