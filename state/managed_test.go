package state

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManaged_ReleaseOnce(t *testing.T) {
	var released []int
	m := Manage(7, func(raw int) { released = append(released, raw) })

	require.Equal(t, 7, m.Get())
	m.Release()
	m.Release()
	require.Equal(t, []int{7}, released)
}

func TestManaged_Nil(t *testing.T) {
	var m *Managed[string]
	require.Equal(t, "", m.Get())
	require.NotPanics(t, m.Release)
}

func TestReleaseStack_ReverseOrder(t *testing.T) {
	var released []string
	record := func(name string) { released = append(released, name) }

	var stack releaseStack
	stack.push(Manage("instance", record))
	stack.push(Manage("surface", record))
	stack.push(Manage("device", record))
	stack.push(Manage("pool", record))

	stack.releaseAll()
	require.Equal(t, []string{"pool", "device", "surface", "instance"}, released)
	require.Empty(t, stack)

	stack.releaseAll()
	require.Len(t, released, 4)
}
