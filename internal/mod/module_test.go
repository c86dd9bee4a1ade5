package mod

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubModule struct {
	name string
}

func (m *stubModule) Name() string                { return m.name }
func (m *stubModule) Description() string         { return "stub" }
func (m *stubModule) Validate(args []string) error { return nil }
func (m *stubModule) Execute(ctx context.Context, args []string) (Result, error) {
	return Result{}, nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register(&stubModule{name: "sysctl"}))

	m, ok := registry.Get("sysctl")
	require.True(t, ok)
	assert.Equal(t, "sysctl", m.Name())

	_, ok = registry.Get("missing")
	assert.False(t, ok)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register(&stubModule{name: "ssh"}))
	err := registry.Register(&stubModule{name: "ssh"})
	assert.ErrorContains(t, err, "already registered")
}

func TestRegistryRejectsInvalidModules(t *testing.T) {
	registry := NewRegistry()

	assert.Error(t, registry.Register(nil))
	assert.Error(t, registry.Register(&stubModule{name: ""}))
}

func TestRegistryListSorted(t *testing.T) {
	registry := NewRegistry()

	for _, name := range []string{"update", "certs", "sysctl"} {
		require.NoError(t, registry.Register(&stubModule{name: name}))
	}

	list := registry.List()
	require.Len(t, list, 3)
	assert.Equal(t, "certs", list[0].Name())
	assert.Equal(t, "sysctl", list[1].Name())
	assert.Equal(t, "update", list[2].Name())
}
