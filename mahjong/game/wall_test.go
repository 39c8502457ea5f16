package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/haipai/mahjong/game"
	"github.com/ratel-online/haipai/mahjong/tile"
	"github.com/stretchr/testify/require"
)

func TestGenerateWall(t *testing.T) {
	t.Run("holds_four_of_each_kind", func(t *testing.T) {
		wall := game.GenerateWall(rand.New(rand.NewSource(3)))
		require.Len(t, wall, 136)
		counts := map[tile.Tile]int{}
		for _, token := range wall {
			counts[token]++
		}
		require.Len(t, counts, 34)
		for _, kind := range tile.All() {
			require.Equal(t, 4, counts[kind], kind)
		}
	})

	t.Run("is_deterministic_for_a_seed", func(t *testing.T) {
		require.Equal(t,
			game.GenerateWall(rand.New(rand.NewSource(9))),
			game.GenerateWall(rand.New(rand.NewSource(9))))
	})

	t.Run("accepts_a_nil_source", func(t *testing.T) {
		require.Len(t, game.GenerateWall(nil), 136)
	})
}

func TestWall(t *testing.T) {
	wall := game.NewWall([]tile.Tile{tile.East, tile.South, tile.West})
	first, err := wall.DrawOne()
	require.NoError(t, err)
	require.Equal(t, tile.East, first)
	require.Equal(t, []tile.Tile{tile.South, tile.West}, wall.Draw(5))
	require.True(t, wall.NoTiles())
	_, err = wall.DrawOne()
	require.ErrorIs(t, err, game.ErrWallExhausted)
}
