package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
)

func TestTagDetailCache(t *testing.T) {
	c, err := NewTagDetailCache(100, time.Minute)
	require.NoError(t, err)
	t.Cleanup(c.Close)

	detail := &entities.TagDetail{
		Tag:       &entities.Tag{ID: "t1"},
		BrandName: "Levi's",
		Tally:     entities.VoteTally{Upvotes: 2},
	}

	t.Run("retorna entrada gravada", func(t *testing.T) {
		require.True(t, c.Set("t1", c.Version("t1"), detail))

		got, ok := c.Get("t1")
		require.True(t, ok)
		assert.Equal(t, "Levi's", got.BrandName)
	})

	t.Run("invalidate remove a entrada", func(t *testing.T) {
		require.True(t, c.Set("t1", c.Version("t1"), detail))
		c.Invalidate("t1")

		_, ok := c.Get("t1")
		assert.False(t, ok)
	})

	t.Run("descarta detalhe lido antes de um invalidate", func(t *testing.T) {
		version := c.Version("t2")
		c.Invalidate("t2")

		stale := &entities.TagDetail{Tag: &entities.Tag{ID: "t2"}}
		assert.False(t, c.Set("t2", version, stale))

		_, ok := c.Get("t2")
		assert.False(t, ok)

		fresh := &entities.TagDetail{Tag: &entities.Tag{ID: "t2"}, Tally: entities.VoteTally{Upvotes: 1}}
		require.True(t, c.Set("t2", c.Version("t2"), fresh))

		got, ok := c.Get("t2")
		require.True(t, ok)
		assert.Equal(t, 1, got.Tally.Upvotes)
	})

	t.Run("invalidate de outra etiqueta não afeta a versão", func(t *testing.T) {
		version := c.Version("t3")
		c.Invalidate("t4")

		assert.True(t, c.Set("t3", version, &entities.TagDetail{Tag: &entities.Tag{ID: "t3"}}))
	})

	t.Run("entrada desconhecida", func(t *testing.T) {
		_, ok := c.Get("missing")
		assert.False(t, ok)
	})
}
