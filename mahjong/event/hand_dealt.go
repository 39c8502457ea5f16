package event

import "github.com/ratel-online/haipai/mahjong/tile"

var HandDealt = &handDealtEmitter{}

type HandDealtPayload struct {
	PlayerName string
	Indicators []tile.Tile
	Resumed    bool
}

type HandDealtListener interface {
	OnHandDealt(HandDealtPayload)
}

type handDealtEmitter struct {
	listeners []HandDealtListener
}

func (e *handDealtEmitter) AddListener(listener HandDealtListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *handDealtEmitter) Emit(payload HandDealtPayload) {
	for _, listener := range e.listeners {
		listener.OnHandDealt(payload)
	}
}
