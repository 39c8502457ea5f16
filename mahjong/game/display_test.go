package game_test

import (
	"strings"
	"testing"

	"github.com/ratel-online/haipai/mahjong/game"
	"github.com/ratel-online/haipai/mahjong/tile"
	"github.com/stretchr/testify/require"
)

func TestDisplay(t *testing.T) {
	t.Run("renders_a_fresh_hand", func(t *testing.T) {
		g := fixedGame(t)
		require.Equal(t, "", g.Sutehai())
		require.Equal(t, "🀫🀫🀀🀫🀫🀫🀫", g.Wanpai())
		require.Equal(t, "🀀🀁🀂🀃🀄🀅🀆🀇🀈🀉🀊🀋🀌", g.Tehai())
		require.Equal(t, "🀍", g.Tsumohai())
		require.Equal(t, "\n\n🀫🀫🀀🀫🀫🀫🀫\n\n🀀🀁🀂🀃🀄🀅🀆🀇🀈🀉🀊🀋🀌 🀍", g.Display())
	})

	t.Run("sorts_the_hand_but_keeps_the_tsumohai_last", func(t *testing.T) {
		g := game.New(nil, []tile.Tile{"九筒", "一萬", tile.East, "五索"}, nil, nil)
		require.Equal(t, "🀀🀇🀡", g.Tehai())
		require.Equal(t, "🀔", g.Tsumohai())
	})

	t.Run("wraps_discards_every_six_tiles", func(t *testing.T) {
		discards := []tile.Tile{"一萬", "二萬", "三萬", "四萬", "五萬", "六萬", "七萬", "八萬"}
		g := game.New(nil, nil, discards, nil)
		require.Equal(t, "🀇🀈🀉🀊🀋🀌\n🀍🀎", g.Sutehai())
		require.Len(t, strings.Split(g.Sutehai(), "\n"), 2)
	})

	t.Run("caps_indicators_at_five", func(t *testing.T) {
		indicators := []tile.Tile{tile.East, tile.South, tile.West, tile.North, tile.Red, tile.Green}
		g := game.New(nil, nil, nil, indicators)
		require.Equal(t, "🀫🀫🀀🀁🀂🀃🀄", g.Wanpai())
	})

	t.Run("renders_an_empty_hand", func(t *testing.T) {
		g := game.New(nil, nil, nil, nil)
		require.Equal(t, "", g.Tehai())
		require.Equal(t, "", g.Tsumohai())
	})
}
