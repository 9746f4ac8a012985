package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scout/internal/adapters/telemetry/progrock"
	"go.trai.ch/scout/internal/core/domain"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_Integration(t *testing.T) {
	recorder := progrock.New()

	ctx := context.Background()
	_, vertex := recorder.Record(ctx, "NPM::left-pad:1.3.0")

	_, err := vertex.Stdout().Write([]byte("Standard Output\n"))
	require.NoError(t, err)
	_, err = vertex.Stderr().Write([]byte("Standard Error\n"))
	require.NoError(t, err)

	vertex.Log(domain.LogLevelDebug, "debug msg")
	vertex.Complete(nil)

	_, failed := recorder.Record(ctx, "NPM::left-pad:1.3.0")
	failed.Complete(errors.New("scan failed"))

	require.NoError(t, recorder.Close())
}
