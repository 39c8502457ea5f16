package game

import (
	"sort"
	"strings"

	"github.com/ratel-online/haipai/mahjong/consts"
	"github.com/ratel-online/haipai/mahjong/tile"
)

// Tehai renders the hand without the tsumohai, glyphs sorted.
func (g *Game) Tehai() string {
	tiles := g.hand.Tiles()
	if len(tiles) == 0 {
		return ""
	}
	glyphs := tile.Glyphs(tiles[:len(tiles)-1])
	sort.Strings(glyphs)
	return strings.Join(glyphs, "")
}

func (g *Game) Tsumohai() string {
	glyph, _ := g.hand.Last().Glyph()
	return glyph
}

// Sutehai renders the discards in rows of six.
func (g *Game) Sutehai() string {
	buf := strings.Builder{}
	discards := g.pile.Tiles()
	for i := 0; i < len(discards); i += consts.DiscardRowSize {
		end := i + consts.DiscardRowSize
		if end > len(discards) {
			end = len(discards)
		}
		buf.WriteString(strings.Join(tile.Glyphs(discards[i:end]), ""))
		buf.WriteString("\n")
	}
	return strings.TrimSpace(buf.String())
}

// Wanpai renders the dead wall: two face-down tiles, then five indicator
// slots that are face down until revealed.
func (g *Game) Wanpai() string {
	buf := strings.Builder{}
	buf.WriteString(strings.Repeat(tile.Back, consts.HiddenIndicators))
	for i := 0; i < consts.MaxIndicators; i++ {
		if i < len(g.indicators) {
			glyph, _ := g.indicators[i].Glyph()
			buf.WriteString(glyph)
		} else {
			buf.WriteString(tile.Back)
		}
	}
	return buf.String()
}

// Display joins the discards, the dead wall and the hand.
func (g *Game) Display() string {
	return g.Sutehai() + "\n\n" + g.Wanpai() + "\n\n" + g.Tehai() + " " + g.Tsumohai()
}
