package event

import "github.com/ratel-online/haipai/mahjong/tile"

var TileDiscarded = &tileDiscardedEmitter{}

type TileDiscardedPayload struct {
	PlayerName string
	Tile       tile.Tile
	Tsumogiri  bool
	Remaining  int
}

type TileDiscardedListener interface {
	OnTileDiscarded(TileDiscardedPayload)
}

type tileDiscardedEmitter struct {
	listeners []TileDiscardedListener
}

func (e *tileDiscardedEmitter) AddListener(listener TileDiscardedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *tileDiscardedEmitter) Emit(payload TileDiscardedPayload) {
	for _, listener := range e.listeners {
		listener.OnTileDiscarded(payload)
	}
}
