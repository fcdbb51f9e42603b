package polypi

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, h.Enabled(context.Background(), level))
	}
	assert.NoError(t, h.Handle(context.Background(), slog.Record{}))
	assert.Equal(t, nopHandler{}, h.WithAttrs([]slog.Attr{slog.String("key", "val")}))
	assert.Equal(t, nopHandler{}, h.WithGroup("group"))
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := Approximate(8, DefaultRadius)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "approximated pi")
	assert.Contains(t, buf.String(), "sides=8")

	buf.Reset()
	_, err = Approximate(7, DefaultRadius)
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "rejected polygon")

	SetLogger(nil)
	buf.Reset()
	_, err = Approximate(8, DefaultRadius)
	assert.NoError(t, err)
	assert.Empty(t, buf.String())
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
