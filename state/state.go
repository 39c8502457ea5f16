package state

import (
	"errors"
	"math/rand"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/haipai/consts"
	"github.com/ratel-online/haipai/database"
	"github.com/ratel-online/haipai/mahjong/event"
	"github.com/ratel-online/haipai/mahjong/game"
	"github.com/ratel-online/haipai/mahjong/tile"
)

var states = map[consts.StateID]State{}

var askTimeout = consts.TableTimeout

// newRand seeds every dealt wall. Tests replace it.
var newRand = func() *rand.Rand {
	return game.NewRand()
}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateTable, &table{})
	event.HandDealt.AddListener(logListener{})
	event.TileDiscarded.AddListener(logListener{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

type State interface {
	Next(player *database.Player) (consts.StateID, error)
	Exit(player *database.Player) consts.StateID
}

// SetTimeout bounds how long the table waits for a command.
func SetTimeout(timeout time.Duration) {
	askTimeout = timeout
}

// Run drives the player through the states until the session ends.
func Run(player *database.Player) {
	defer func() {
		if err := recover(); err != nil {
			async.PrintStackTrace(err)
		}
	}()
	player.State(consts.StateWelcome)
	for {
		state := states[player.GetState()]
		stateId, err := state.Next(player)
		if err != nil {
			var e consts.Error
			if errors.As(err, &e) && e.Exit {
				state.Exit(player)
				return
			}
			log.Error(err)
			return
		}
		if stateId > 0 {
			player.State(stateId)
		}
	}
}

type logListener struct{}

func (logListener) OnHandDealt(payload event.HandDealtPayload) {
	log.Infof("hand dealt for %s, resumed %v, indicators %s\n", payload.PlayerName, payload.Resumed, tile.ToTileString(payload.Indicators))
}

func (logListener) OnTileDiscarded(payload event.TileDiscardedPayload) {
	log.Infof("%s discarded %s, tsumogiri %v, %d left\n", payload.PlayerName, payload.Tile, payload.Tsumogiri, payload.Remaining)
}
