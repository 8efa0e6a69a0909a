// Package tracer provides a lightweight tracing abstraction for client record intake.
//
// The service layer depends on the Tracer interface only, so construction can
// be traced without the domain packages importing OpenTelemetry.
//
// Implementations:
//   - NoopTracer: for tests and when tracing is disabled
//   - OTelTracer: OpenTelemetry adapter
package tracer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span, recording err when non-nil.
	// End must be called exactly once, typically via defer.
	End(err error)

	// SetAttributes adds key-value pairs to the span.
	SetAttributes(attrs ...Attribute)

	// AddEvent records a timestamped event within the span.
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans.
//
// Example:
//
//	ctx, span := tracer.Start(ctx, tracer.SpanParseFull,
//	    tracer.String(tracer.AttrShape, "text"),
//	)
//	defer func() { span.End(err) }()
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int64 creates an int64 attribute.
func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// HashClientID returns a short SHA-256 prefix of a client identifier so traces
// can be correlated without carrying the identifier itself.
func HashClientID(clientID string) string {
	if clientID == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(clientID))
	return hex.EncodeToString(hash[:8])
}

// Span names.
const (
	SpanParseShort = "client.parse_short"
	SpanParseFull  = "client.parse_full"
	SpanMerge      = "client.merge"
)

// Attribute keys.
const (
	AttrIntakeID  = "intake.id"
	AttrKind      = "record.kind"
	AttrShape     = "input.shape"
	AttrClientID  = "client_id.hash"
	AttrErrorCode = "error.code"
	AttrField     = "error.field"
)

// Event names.
const (
	EventInitialsDerived = "initials.derived"
)
