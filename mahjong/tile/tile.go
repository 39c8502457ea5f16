package tile

import "strings"

// Tile is the canonical token of one of the 34 tile kinds, e.g. "東" or "一萬".
type Tile string

const (
	East  Tile = "東"
	South Tile = "南"
	West  Tile = "西"
	North Tile = "北"
	Red   Tile = "中"
	Green Tile = "發"
	White Tile = "白"
)

// Suit kanji appended to a numeral.
const (
	Man = "萬"
	Sou = "索"
	Pin = "筒"
)

// Base is the code point of the first glyph in the mahjong tiles block.
const Base = 0x1F000

// Back is the face-down glyph.
const Back = "\U0001F02B"

var Numerals = []string{"一", "二", "三", "四", "五", "六", "七", "八", "九"}

var (
	catalog []Tile
	indexes map[Tile]int
)

func init() {
	catalog = append(catalog, East, South, West, North, Red, Green, White)
	for _, suit := range []string{Man, Sou, Pin} {
		for _, numeral := range Numerals {
			catalog = append(catalog, Tile(numeral+suit))
		}
	}
	indexes = make(map[Tile]int, len(catalog))
	for i, t := range catalog {
		indexes[t] = i
	}
}

// All returns the 34 kinds in catalog order: honors, then characters,
// bamboos and circles from one to nine.
func All() []Tile {
	tiles := make([]Tile, len(catalog))
	copy(tiles, catalog)
	return tiles
}

// Index returns the ordinal of t in the catalog, or -1.
func (t Tile) Index() int {
	if i, ok := indexes[t]; ok {
		return i
	}
	return -1
}

func (t Tile) Valid() bool {
	_, ok := indexes[t]
	return ok
}

// Glyph returns the pictographic glyph of t. ok is false for tokens outside
// the catalog.
func (t Tile) Glyph() (glyph string, ok bool) {
	i, ok := indexes[t]
	if !ok {
		return "", false
	}
	return string(rune(Base + i)), true
}

func (t Tile) String() string {
	return string(t)
}

// Glyphs maps tiles to glyphs. Unknown tokens map to an empty string.
func Glyphs(tiles []Tile) []string {
	ret := make([]string, 0, len(tiles))
	for _, t := range tiles {
		glyph, _ := t.Glyph()
		ret = append(ret, glyph)
	}
	return ret
}

func ToTileString(tiles []Tile) string {
	ret := make([]string, 0, len(tiles))
	for _, t := range tiles {
		ret = append(ret, t.String())
	}
	return strings.Join(ret, " ")
}
