package resource_test

import (
	"testing"

	"github.com/marcelsud/locadora-web/resource"
	"github.com/stretchr/testify/assert"
)

func TestStore(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		s := resource.NewStore[int]()

		assert.False(t, s.Loaded())
		assert.Empty(t, s.Items())
		_, ok := s.Selected()
		assert.False(t, ok)
	})

	t.Run("items are copied in and out", func(t *testing.T) {
		s := resource.NewStore[int]()
		in := []int{1, 2, 3}

		s.SetItems(in)
		in[0] = 99
		out := s.Items()
		out[1] = 98

		assert.True(t, s.Loaded())
		assert.Equal(t, []int{1, 2, 3}, s.Items())
		assert.Equal(t, 3, s.Len())
	})

	t.Run("selected", func(t *testing.T) {
		s := resource.NewStore[string]()

		s.SetSelected("classe-1")
		got, ok := s.Selected()

		assert.True(t, ok)
		assert.Equal(t, "classe-1", got)
	})
}
