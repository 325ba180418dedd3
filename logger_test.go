package lvgeom_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/katalvlaran/lvgeom"
	"github.com/stretchr/testify/require"
)

// TestLogger_DefaultIsSilent verifies the default logger drops every level.
func TestLogger_DefaultIsSilent(t *testing.T) {
	lvgeom.SetLogger(nil)
	l := lvgeom.Logger()
	require.NotNil(t, l)
	require.False(t, l.Enabled(context.Background(), slog.LevelError))
}

// TestLogger_SetLogger verifies a configured logger receives records and nil resets it.
func TestLogger_SetLogger(t *testing.T) {
	var buf bytes.Buffer
	lvgeom.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { lvgeom.SetLogger(nil) })

	lvgeom.Logger().Debug("ping", "k", 1)
	require.Contains(t, buf.String(), "ping")
	require.Contains(t, buf.String(), "k=1")

	lvgeom.SetLogger(nil)
	require.False(t, lvgeom.Logger().Enabled(context.Background(), slog.LevelDebug))
}
