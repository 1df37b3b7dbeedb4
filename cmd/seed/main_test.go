package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDemoHabitsAreWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, h := range demoHabits {
		require.NotEmpty(t, h.ID)
		require.NotEmpty(t, h.Name)
		require.False(t, seen[h.ID], "duplicate habit id %s", h.ID)
		seen[h.ID] = true
	}
}
