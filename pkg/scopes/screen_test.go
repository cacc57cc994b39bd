package scopes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingScreen struct {
	created   bool
	destroyed int
	createErr error
}

func (s *recordingScreen) OnCreate(app *AppGraph) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = true
	return nil
}

func (s *recordingScreen) OnDestroy() {
	s.destroyed++
}

func TestManagerStartFinish(t *testing.T) {
	manager := NewManager(NewAppGraph())
	screen := &recordingScreen{}

	require.NoError(t, manager.Start(screen))
	assert.True(t, screen.created)
	assert.Equal(t, 1, manager.Active())

	manager.Finish(screen)
	assert.Equal(t, 1, screen.destroyed)
	assert.Equal(t, 0, manager.Active())

	// Finishing again is a no-op.
	manager.Finish(screen)
	assert.Equal(t, 1, screen.destroyed)
}

func TestManagerStartFailure(t *testing.T) {
	manager := NewManager(NewAppGraph())
	boom := errors.New("boom")
	screen := &recordingScreen{createErr: boom}

	err := manager.Start(screen)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, manager.Active())
}

func TestManagerFinishAll(t *testing.T) {
	manager := NewManager(NewAppGraph())
	first := &recordingScreen{}
	second := &recordingScreen{}

	require.NoError(t, manager.Start(first))
	require.NoError(t, manager.Start(second))

	manager.FinishAll()
	assert.Equal(t, 1, first.destroyed)
	assert.Equal(t, 1, second.destroyed)
	assert.Equal(t, 0, manager.Active())
}
