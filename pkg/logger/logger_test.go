package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kinimary/belwest/pkg/logger"
)

func TestHandler_AddsContextFields(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	l := logger.NewWithWriter(buf, slog.LevelDebug)

	ctx := logger.SetRequestID(context.Background(), "req-1")
	ctx = logger.SetUserID(ctx, 42)
	ctx = logger.SetLogType(ctx, "permissions")
	ctx = logger.SetMethod(ctx, "POST")
	ctx = logger.SetURL(ctx, "/api/permissions/custom")

	l.With("component", "test").InfoContext(ctx, "override saved")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))

	require.Equal(t, "override saved", rec["msg"])
	require.Equal(t, "req-1", rec["request_id"])
	require.InDelta(t, 42, rec["user_id"], 0)
	require.Equal(t, "permissions", rec["type"])
	require.Equal(t, "POST", rec["method"])
	require.Equal(t, "/api/permissions/custom", rec["url"])
	require.Equal(t, "test", rec["component"])
	require.Equal(t, "belwest-permissions", rec["origin_service"])
}

func TestHandler_AnonymousUserIsNull(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	l := logger.NewWithWriter(buf, slog.LevelInfo)

	l.InfoContext(context.Background(), "health")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))

	v, ok := rec["user_id"]
	require.True(t, ok)
	require.Nil(t, v)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, logger.ParseLevel("warn"))
	require.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}
