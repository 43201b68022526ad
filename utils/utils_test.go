package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestKeys(t *testing.T) {
	m := map[int]string{5: "e", 1: "a", 3: "c", 2: "b"}

	t.Run("GetKeys", func(t *testing.T) {
		keys := GetKeys(m)
		slices.Sort(keys)
		require.Equal(t, []int{1, 2, 3, 5}, keys)
	})

	t.Run("GetSortedKeys", func(t *testing.T) {
		require.Equal(t, []int{1, 2, 3, 5}, GetSortedKeys(m))
	})
}
