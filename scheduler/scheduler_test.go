package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartRejectsInvalidSpec(t *testing.T) {
	s := New("every once in a while")
	assert.Error(t, s.Start())
}

func TestStartAndStop(t *testing.T) {
	s := New("@every 1h")
	require.NoError(t, s.Start())
	s.Stop()
}
