package game

import (
	"math/rand"

	"github.com/ratel-online/haipai/mahjong/command"
	"github.com/ratel-online/haipai/mahjong/consts"
	"github.com/ratel-online/haipai/mahjong/tile"
)

// Game is one hand of solo play: the wall, the hand, the discards and the
// revealed dora indicators. A Game is owned by a single caller.
type Game struct {
	wall       *Wall
	hand       *Hand
	pile       *Pile
	indicators []tile.Tile
}

// New builds a game from explicit state. The state is not validated.
func New(wall, hand, discards, indicators []tile.Tile) *Game {
	return &Game{
		wall:       NewWall(wall),
		hand:       NewHand(hand),
		pile:       NewPile(discards),
		indicators: copyTiles(indicators),
	}
}

// Haipai shuffles a new wall, reveals one indicator and deals 14 tiles.
func Haipai(r *rand.Rand) *Game {
	g := New(GenerateWall(r), nil, nil, nil)
	g.indicators = g.wall.Draw(1)
	for g.hand.Size() < consts.MaxHandSize {
		if err := g.tsumo(); err != nil {
			break
		}
	}
	return g
}

func (g *Game) Wall() []tile.Tile {
	return g.wall.Tiles()
}

func (g *Game) Hand() []tile.Tile {
	return g.hand.Tiles()
}

func (g *Game) Discards() []tile.Tile {
	return g.pile.Tiles()
}

func (g *Game) Indicators() []tile.Tile {
	return copyTiles(g.indicators)
}

// Remaining is the number of tiles left to draw.
func (g *Game) Remaining() int {
	return g.wall.Size()
}

// Exhausted reports whether the wall is empty and the hand is waiting for a
// draw that cannot come.
func (g *Game) Exhausted() bool {
	return g.wall.NoTiles() && g.hand.Size() < consts.MaxHandSize
}

// Discard discards one tile named in any form NormalizeTileName accepts.
// The state is unchanged on ErrUnknownTile and ErrTileNotInHand.
func (g *Game) Discard(name string) error {
	t, ok := command.NormalizeTileName(name)
	if !ok {
		return ErrUnknownTile
	}
	if !g.hand.Contains(t) {
		return ErrTileNotInHand
	}
	if g.Exhausted() {
		return ErrWallExhausted
	}
	g.hand.RemoveTile(t)
	g.pile.Add(t)
	return g.tsumo()
}

// Tsumogiri discards the tile just drawn.
func (g *Game) Tsumogiri() error {
	if g.hand.Empty() {
		return ErrEmptyHand
	}
	if g.Exhausted() {
		return ErrWallExhausted
	}
	t, err := g.hand.PopLast()
	if err != nil {
		return err
	}
	g.pile.Add(t)
	return g.tsumo()
}

// tsumo refills the hand with one tile from the wall.
func (g *Game) tsumo() error {
	if g.hand.Size() >= consts.MaxHandSize {
		return nil
	}
	t, err := g.wall.DrawOne()
	if err != nil {
		return err
	}
	g.hand.AddTiles(t)
	return nil
}
