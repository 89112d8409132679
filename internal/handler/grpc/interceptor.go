package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// traceIDKey is the metadata key carrying the trace id, the gRPC
// counterpart of the HTTP X-Trace-ID header.
const traceIDKey = "x-trace-id"

// UnaryLogging tags the call context with a trace id and writes one access
// log line per unary call.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = uuid.NewString()
	}
	ctx = h.logger.WithTraceID(ctx, traceID)

	start := time.Now()
	resp, err := handler(ctx, req)

	h.logger.Info().
		Str("trace_id", traceID).
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
