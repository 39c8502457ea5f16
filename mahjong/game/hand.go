package game

import "github.com/ratel-online/haipai/mahjong/tile"

// Hand keeps tiles in draw order; the last tile is the tsumohai.
type Hand struct {
	tiles []tile.Tile
}

func NewHand(tiles []tile.Tile) *Hand {
	hand := &Hand{tiles: make([]tile.Tile, 0, 14)}
	hand.tiles = append(hand.tiles, tiles...)
	return hand
}

func (h *Hand) AddTiles(tiles ...tile.Tile) {
	h.tiles = append(h.tiles, tiles...)
}

func (h *Hand) Tiles() []tile.Tile {
	return copyTiles(h.tiles)
}

func (h *Hand) Empty() bool {
	return len(h.tiles) == 0
}

func (h *Hand) Contains(t tile.Tile) bool {
	return h.indexOf(t) >= 0
}

// RemoveTile removes the first occurrence of t, keeping the order of the rest.
func (h *Hand) RemoveTile(t tile.Tile) bool {
	index := h.indexOf(t)
	if index < 0 {
		return false
	}
	h.tiles = append(h.tiles[:index], h.tiles[index+1:]...)
	return true
}

// PopLast removes the tsumohai.
func (h *Hand) PopLast() (tile.Tile, error) {
	if h.Empty() {
		return "", ErrEmptyHand
	}
	t := h.tiles[len(h.tiles)-1]
	h.tiles = h.tiles[:len(h.tiles)-1]
	return t, nil
}

// Last returns the tsumohai, or an empty tile on an empty hand.
func (h *Hand) Last() tile.Tile {
	if h.Empty() {
		return ""
	}
	return h.tiles[len(h.tiles)-1]
}

func (h *Hand) Size() int {
	return len(h.tiles)
}

func (h *Hand) indexOf(t tile.Tile) int {
	for index, tileInHand := range h.tiles {
		if tileInHand == t {
			return index
		}
	}
	return -1
}
