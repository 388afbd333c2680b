package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/recurrence/logging"
)

func TestNewTo_InfoHidesDebug(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.NewTo(&buf, logging.Config{Level: "info"})
	require.NoError(t, err)

	log.V(1).Info("hidden")
	log.Info("shown", "equation", "T(n) = 2T(n/2) + n")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"equation":"T(n) = 2T(n/2) + n"`)
}

func TestNewTo_DebugShowsV1(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.NewTo(&buf, logging.Config{Level: "debug"})
	require.NoError(t, err)

	log.V(1).Info("decision")
	assert.Contains(t, buf.String(), "decision")
}

func TestBadLevel(t *testing.T) {
	_, err := logging.NewTo(&bytes.Buffer{}, logging.Config{Level: "loud"})
	assert.ErrorIs(t, err, logging.ErrBadLevel)

	_, _, err = logging.New(logging.Config{Level: "loud"})
	assert.ErrorIs(t, err, logging.ErrBadLevel)
}

func TestNew_Defaults(t *testing.T) {
	log, flush, err := logging.New(logging.Config{})
	require.NoError(t, err)
	defer flush()
	assert.True(t, log.Enabled())
}
