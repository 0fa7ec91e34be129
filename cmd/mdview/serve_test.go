package main_test

import (
	"context"
	"testing"

	main "github.com/fwojciec/mdview/cmd/mdview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("stops when the context ends", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, sampleTree(), nil, map[string]string{})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		deps.Ctx = ctx

		err := (&main.ServeCmd{Addr: "127.0.0.1:0"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Serving on http://127.0.0.1:")
	})

	t.Run("returns error for an unusable address", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, sampleTree(), nil, map[string]string{})

		err := (&main.ServeCmd{Addr: "not-an-address"}).Run(deps)

		require.Error(t, err)
		assert.Empty(t, stdout.String())
	})
}
