package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	warnings int
}

func (l *recordingLogger) Warn(string, ...interface{}) {
	l.warnings++
}

func TestLoad_Primary(t *testing.T) {
	log := &recordingLogger{}

	loc := Load("UTC", nil, 3, log)
	require.NotNil(t, loc)
	assert.Equal(t, "UTC", loc.String())
	assert.Zero(t, log.warnings)
}

func TestLoad_FallbackAfterMiss(t *testing.T) {
	log := &recordingLogger{}

	loc := Load("No/SuchZone", []string{"UTC"}, 3, log)
	require.NotNil(t, loc)
	assert.Equal(t, "UTC", loc.String())
	assert.Equal(t, 1, log.warnings)
}

func TestLoad_FixedOffsetLastResort(t *testing.T) {
	log := &recordingLogger{}

	loc := Load("No/SuchZone", []string{"Also/Missing"}, 3, log)
	require.NotNil(t, loc)
	assert.Equal(t, "UTC+3", loc.String())
	// Два промаха плюс сообщение о переходе на фиксированное смещение
	assert.Equal(t, 3, log.warnings)
}

func TestLoad_EmptyNamesSkipped(t *testing.T) {
	log := &recordingLogger{}

	loc := Load("", []string{"", "UTC"}, 3, log)
	require.NotNil(t, loc)
	assert.Equal(t, "UTC", loc.String())
	assert.Zero(t, log.warnings)
}
