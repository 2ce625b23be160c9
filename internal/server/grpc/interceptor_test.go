package grpc

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/eventauth/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type recordingLogger struct {
	nopLogger
	msgs []string
	args [][]any
}

func (r *recordingLogger) Debug(_ context.Context, msg string, args ...any) {
	r.msgs = append(r.msgs, msg)
	r.args = append(r.args, args)
}

func (r *recordingLogger) With(...any) logging.Logger { return r }

func TestLoggingInterceptor_LogsStatusCode(t *testing.T) {
	l := &recordingLogger{}
	s := NewGRPCServer("", l)

	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.NotFound, "unknown service")
	}

	_, err := s.loggingInterceptor(context.Background(), nil, info, h)
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}

	if len(l.msgs) != 1 || l.msgs[0] != "grpc.request" {
		t.Fatalf("unexpected log messages: %v", l.msgs)
	}
	got := map[any]any{}
	for i := 0; i+1 < len(l.args[0]); i += 2 {
		got[l.args[0][i]] = l.args[0][i+1]
	}
	if got["method"] != info.FullMethod {
		t.Fatalf("method not logged: %v", got)
	}
	if got["code"] != codes.NotFound.String() {
		t.Fatalf("code not logged: %v", got)
	}
}
