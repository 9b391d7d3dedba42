package core

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/ib-77/staticflow/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestGetMaxSteps(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, 10, GetMaxSteps(ctx, 10))

	ctx = WithLoopOptions(ctx, 3)
	assert.Equal(t, 3, GetMaxSteps(ctx, 10))
}

func TestGetLogger(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.NotNil(t, GetLogger(ctx))
	assert.NotNil(t, GetLogger(WithLogger(ctx, nil)))

	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo)
	GetLogger(WithLogger(ctx, logger)).Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
