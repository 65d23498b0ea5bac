package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		arg    []any
		wantOK bool
		msg    string
	}{
		{name: "message with fields", arg: []any{"done", "provider", "tei", "ms", 12}, wantOK: true, msg: "done"},
		{name: "single message", arg: []any{"done"}, wantOK: false},
		{name: "even count", arg: []any{"done", "provider"}, wantOK: false},
		{name: "non-string key", arg: []any{"done", 1, "x"}, wantOK: false},
		{name: "non-string message", arg: []any{42, "k", "v"}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, kv, ok := split(tt.arg)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.msg, msg)
				assert.Len(t, kv, len(tt.arg)-1)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, "", RequestID(context.Background()))
}

func TestInit_DoesNotPanic(t *testing.T) {
	l := Init(ZapConfig{Level: "bogus", Mode: ModeDevelopment, Encoding: EncodingConsole, ColorEnabled: true})
	ctx := WithRequestID(context.Background(), "req-2")
	l.Info(ctx, "started", "port", 8000)
	l.Infof(ctx, "listening on %d", 8000)
	l.Warn(ctx, "plain warning")

	NewNop().Error(ctx, "ignored")
}
