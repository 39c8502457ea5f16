package command

import (
	"strings"

	"github.com/ratel-online/haipai/mahjong/tile"
)

type rule struct {
	aliases     []string
	replacement string
}

// prefix replaces the first alias found at the start of s.
func (r rule) prefix(s string) string {
	for _, alias := range r.aliases {
		if strings.HasPrefix(s, alias) {
			return r.replacement + s[len(alias):]
		}
	}
	return s
}

// suffix replaces the longest alias found at the end of s, which is the
// match starting leftmost.
func (r rule) suffix(s string) string {
	matched := ""
	for _, alias := range r.aliases {
		if strings.HasSuffix(s, alias) && len(alias) > len(matched) {
			matched = alias
		}
	}
	if matched == "" {
		return s
	}
	return s[:len(s)-len(matched)] + r.replacement
}

func (r rule) whole(s string) string {
	for _, alias := range r.aliases {
		if s == alias {
			return r.replacement
		}
	}
	return s
}

var numeralRules = func() []rule {
	rules := make([]rule, 0, len(tile.Numerals))
	for i, numeral := range tile.Numerals {
		rules = append(rules, rule{aliases: []string{string(rune('1' + i))}, replacement: numeral})
	}
	return rules
}()

var suitRules = []rule{
	{aliases: []string{"m", "man", "マン", "まん"}, replacement: tile.Man},
	{aliases: []string{"s", "sou", "ソウ", "そう"}, replacement: tile.Sou},
	{aliases: []string{"p", "pin", "ピン", "ぴん"}, replacement: tile.Pin},
}

var honorRules = []rule{
	{aliases: []string{"ton", "tonn"}, replacement: string(tile.East)},
	{aliases: []string{"nan", "nann"}, replacement: string(tile.South)},
	{aliases: []string{"sya"}, replacement: string(tile.West)},
	{aliases: []string{"pei"}, replacement: string(tile.North)},
	{aliases: []string{"haku"}, replacement: string(tile.White)},
	{aliases: []string{"hatsu", "hatu", "発"}, replacement: string(tile.Green)},
	{aliases: []string{"chun", "chunn", "tyun", "tyunn"}, replacement: string(tile.Red)},
}

// NormalizeTileName resolves a free-form tile name such as "1m", "3ぴん",
// "一まん" or "ton" to its canonical token. ok is false when the name does
// not resolve to one of the 34 kinds.
func NormalizeTileName(name string) (t tile.Tile, ok bool) {
	p := strings.TrimSpace(name)
	for _, r := range numeralRules {
		p = r.prefix(p)
	}
	for _, r := range suitRules {
		p = r.suffix(p)
	}
	for _, r := range honorRules {
		p = r.whole(p)
	}
	t = tile.Tile(p)
	if !t.Valid() {
		return "", false
	}
	return t, true
}
