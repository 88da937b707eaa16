package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ReturnsUsableLogger(t *testing.T) {
	l := NewLogger("test-role")
	require.NotNil(t, l)

	// Must not panic on normal use.
	l.Debug().Str("key", "value").Msg("debug entry")
	l.Info().Msg("info entry")
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	l.Error().Msg("goes nowhere")
}

func TestGetChildLogger_IndependentOfParent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromRequest_FallsBackWhenNoLoggerAttached(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	l := FromRequest(req)
	require.NotNil(t, l)
	l.Info().Msg("no panic expected")
}

func TestFromContext_RoundTrip(t *testing.T) {
	l := Nop()
	ctx := l.WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)
	got.Info().Msg("no panic expected")
}
