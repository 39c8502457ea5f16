package game

import "github.com/ratel-online/haipai/mahjong/tile"

// Pile is the append-only discard history.
type Pile struct {
	tiles []tile.Tile
}

func NewPile(tiles []tile.Tile) *Pile {
	pile := &Pile{tiles: make([]tile.Tile, 0, 32)}
	pile.tiles = append(pile.tiles, tiles...)
	return pile
}

func (p *Pile) Add(t tile.Tile) {
	p.tiles = append(p.tiles, t)
}

func (p *Pile) Tiles() []tile.Tile {
	return copyTiles(p.tiles)
}

func (p *Pile) Top() tile.Tile {
	pileSize := len(p.tiles)
	if pileSize == 0 {
		return ""
	}
	return p.tiles[pileSize-1]
}

func (p *Pile) Size() int {
	return len(p.tiles)
}
