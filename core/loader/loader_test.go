package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	on := &stubFeature{name: "inventory", enabled: true}
	off := &stubFeature{name: "reports", enabled: false}

	m := NewManager()
	m.Register(on)
	m.Register(off)

	assert.NoError(t, m.LoadAll(fiber.New()))
	assert.True(t, on.loaded)
	assert.False(t, off.loaded)
	assert.Equal(t, []string{"inventory"}, m.Loaded())
}

func TestManager_LoadAll_Error(t *testing.T) {
	m := NewManager()
	m.Register(&stubFeature{name: "broken", enabled: true, err: errors.New("boom")})

	err := m.LoadAll(fiber.New())
	assert.EqualError(t, err, "failed to load feature broken: boom")
}

func TestManager_LoadAll_Duplicate(t *testing.T) {
	m := NewManager()
	m.Register(&stubFeature{name: "inventory", enabled: true})
	m.Register(&stubFeature{name: "inventory", enabled: true})

	assert.Error(t, m.LoadAll(fiber.New()))
}
