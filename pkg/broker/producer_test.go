package broker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}

	w.msgs = append(w.msgs, msgs...)

	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestProducer_PublishPermissionChanged(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	p := newProducer(slog.New(slog.NewTextHandler(new(bytes.Buffer), nil)), w, "permissions.changed")

	granted := true
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	p.PublishPermissionChanged(context.Background(), PermissionChangedEvent{
		Type:      EventPermissionGranted,
		UserID:    7,
		Resource:  "sensors",
		Action:    "assign",
		Granted:   &granted,
		ChangedBy: 1,
		ChangedAt: at,
	})
	p.Close()

	require.True(t, w.closed)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	require.Equal(t, "permissions.changed", msg.Topic)
	require.Equal(t, []byte("7"), msg.Key)
	require.Equal(t, []kafka.Header{{Key: "type", Value: []byte(EventPermissionGranted)}}, msg.Headers)

	var got PermissionChangedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	require.Equal(t, int64(7), got.UserID)
	require.Equal(t, "assign", got.Action)
	require.True(t, *got.Granted)
	require.True(t, at.Equal(got.ChangedAt))
}

func TestProducer_WriteErrorIsLogged(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	w := &fakeWriter{err: errors.New("broker down")}
	p := newProducer(slog.New(slog.NewTextHandler(buf, nil)), w, "permissions.changed")

	p.PublishPermissionChanged(context.Background(), PermissionChangedEvent{Type: EventPermissionReset, UserID: 3})

	require.Empty(t, w.msgs)
	require.Contains(t, buf.String(), "broker down")
}
