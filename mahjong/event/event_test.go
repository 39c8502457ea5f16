package event_test

import (
	"testing"

	"github.com/ratel-online/haipai/mahjong/event"
	"github.com/ratel-online/haipai/mahjong/tile"
	"github.com/stretchr/testify/require"
)

func TestTileDiscarded(t *testing.T) {
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	event.TileDiscarded.AddListener(listenerOne)
	event.TileDiscarded.AddListener(listenerTwo)

	payloads := []interface{}{
		event.TileDiscardedPayload{
			PlayerName: "Someone",
			Tile:       tile.South,
			Remaining:  120,
		},
		event.TileDiscardedPayload{
			PlayerName: "Somebody",
			Tile:       "九筒",
			Tsumogiri:  true,
			Remaining:  119,
		},
	}

	for _, payload := range payloads {
		event.TileDiscarded.Emit(payload.(event.TileDiscardedPayload))
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}

func TestHandDealt(t *testing.T) {
	listener := event.NewDummyListener()
	event.HandDealt.AddListener(listener)

	payload := event.HandDealtPayload{PlayerName: "Someone", Indicators: []tile.Tile{tile.East}}
	event.HandDealt.Emit(payload)

	require.Equal(t, []interface{}{payload}, listener.ReceivedPayloads())
}
