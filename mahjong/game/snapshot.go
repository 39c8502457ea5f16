package game

import "github.com/ratel-online/haipai/mahjong/tile"

// Snapshot is the serialisable form of a Game.
type Snapshot struct {
	Wall       []tile.Tile `json:"wall"`
	Hand       []tile.Tile `json:"hand"`
	Discards   []tile.Tile `json:"discards"`
	Indicators []tile.Tile `json:"indicators"`
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Wall:       g.Wall(),
		Hand:       g.Hand(),
		Discards:   g.Discards(),
		Indicators: g.Indicators(),
	}
}

func Restore(s Snapshot) *Game {
	return New(s.Wall, s.Hand, s.Discards, s.Indicators)
}

// Total counts every tile the snapshot holds.
func (s Snapshot) Total() int {
	return len(s.Wall) + len(s.Hand) + len(s.Discards) + len(s.Indicators)
}
