package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ynot/handlers"
)

var _ handlers.PaymentConfirmer = (*promptConfirmer)(nil)

func TestPromptConfirmer(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	pc := newPromptConfirmer(strings.NewReader(" pi_123 \npi_456\n"), &out)

	id, err := pc.ConfirmPayment(context.Background(), "cs_1", decimal.RequireFromString("45.5"))
	require.NoError(t, err)
	assert.Equal(t, "pi_123", id)
	assert.Contains(t, out.String(), "pay 45.50 using client secret cs_1")

	id, err = pc.ConfirmPayment(context.Background(), "cs_2", decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Equal(t, "pi_456", id)

	_, err = pc.ConfirmPayment(context.Background(), "cs_3", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestPromptConfirmer_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pc := newPromptConfirmer(strings.NewReader("pi_1\n"), io.Discard)
	_, err := pc.ConfirmPayment(ctx, "cs", decimal.Zero)
	assert.ErrorIs(t, err, context.Canceled)
}
