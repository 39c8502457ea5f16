package game

import (
	"math/rand"
	"time"

	"github.com/ratel-online/haipai/mahjong/consts"
	"github.com/ratel-online/haipai/mahjong/tile"
)

// Wall is the draw pile, consumed from the front.
type Wall struct {
	tiles []tile.Tile
}

func NewWall(tiles []tile.Tile) *Wall {
	return &Wall{tiles: copyTiles(tiles)}
}

func (w *Wall) NoTiles() bool {
	return len(w.tiles) == 0
}

func (w *Wall) Size() int {
	return len(w.tiles)
}

// DrawOne removes the front tile. It returns ErrWallExhausted on an empty wall.
func (w *Wall) DrawOne() (tile.Tile, error) {
	if w.NoTiles() {
		return "", ErrWallExhausted
	}
	t := w.tiles[0]
	w.tiles = w.tiles[1:]
	return t, nil
}

// Draw removes up to amount tiles from the front.
func (w *Wall) Draw(amount int) []tile.Tile {
	if amount > len(w.tiles) {
		amount = len(w.tiles)
	}
	tiles := copyTiles(w.tiles[:amount])
	w.tiles = w.tiles[amount:]
	return tiles
}

func (w *Wall) Tiles() []tile.Tile {
	return copyTiles(w.tiles)
}

// NewRand returns a time-seeded source for GenerateWall.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// GenerateWall returns four copies of every kind in uniformly random order.
func GenerateWall(r *rand.Rand) []tile.Tile {
	if r == nil {
		r = NewRand()
	}
	kinds := tile.All()
	tiles := make([]tile.Tile, 0, consts.WallSize)
	for i := 0; i < consts.Copies; i++ {
		tiles = append(tiles, kinds...)
	}
	shuffleTiles(r, tiles)
	return tiles
}

// shuffleTiles is Fisher-Yates: each index from the last down to 1 swaps
// with a uniform index in [0, i].
func shuffleTiles(r *rand.Rand, tiles []tile.Tile) {
	for i := len(tiles) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
}

func copyTiles(tiles []tile.Tile) []tile.Tile {
	ret := make([]tile.Tile, len(tiles))
	copy(ret, tiles)
	return ret
}
