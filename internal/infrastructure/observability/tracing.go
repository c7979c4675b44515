package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "mamta-server"

// GetTracer returns the tracer for the chat service.
func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// StartChatSpan starts a span covering one conversation turn.
func StartChatSpan(ctx context.Context, username, conversationID string, hasFile bool) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, "chat.turn",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("chat.username", username),
			attribute.String("chat.conversation_id", conversationID),
			attribute.Bool("chat.has_file", hasFile),
		),
	)
}

// StartUploadSpan starts a span covering one file relay.
func StartUploadSpan(ctx context.Context, filename, mimeType string) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, "files.upload",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("file.name", filename),
			attribute.String("file.mime_type", mimeType),
		),
	)
}

// RecordError records an error on a span.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
