package command

import (
	"strings"

	"github.com/ratel-online/haipai/mahjong/tile"
)

var (
	HaipaiAliases    = []string{"配牌", "はいぱい", "ハイパイ", "haipai", "h"}
	TsumogiriAliases = []string{"ツモ切り", "つも切り", "ツモギリ", "tsumogiri", "t"}
)

// Command is one of Haipai, Tsumogiri, Discard or Unknown.
type Command interface {
	command()
}

// Haipai deals a new hand.
type Haipai struct{}

// Tsumogiri discards the tile just drawn.
type Tsumogiri struct{}

// Discard discards the named tile from the hand.
type Discard struct {
	Tile tile.Tile
}

// Unknown carries input that matched nothing.
type Unknown struct {
	Input string
}

func (Haipai) command()    {}
func (Tsumogiri) command() {}
func (Discard) command()   {}
func (Unknown) command()   {}

// Parse maps one line of input to a Command. Alias matching is exact after
// trimming surrounding whitespace.
func Parse(input string) Command {
	c := strings.TrimSpace(input)
	if contains(HaipaiAliases, c) {
		return Haipai{}
	}
	if contains(TsumogiriAliases, c) {
		return Tsumogiri{}
	}
	if t, ok := NormalizeTileName(c); ok {
		return Discard{Tile: t}
	}
	return Unknown{Input: c}
}

func contains(aliases []string, s string) bool {
	for _, alias := range aliases {
		if alias == s {
			return true
		}
	}
	return false
}
