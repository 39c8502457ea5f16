package state

import (
	"context"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/haipai/consts"
	"github.com/ratel-online/haipai/database"
	"github.com/ratel-online/haipai/mahjong/event"
	"github.com/ratel-online/haipai/render"
)

type welcome struct{}

func (*welcome) Next(player *database.Player) (consts.StateID, error) {
	if err := render.Welcome(player, player.Name); err != nil {
		return 0, err
	}
	if err := render.Help(player); err != nil {
		return 0, err
	}
	resumed, err := player.LoadGame(context.Background())
	if err != nil {
		log.Error(err)
	}
	if resumed {
		event.HandDealt.Emit(event.HandDealtPayload{
			PlayerName: player.Name,
			Indicators: player.Game.Indicators(),
			Resumed:    true,
		})
		_ = player.WriteString("Resuming your last hand. \n")
	} else {
		deal(player)
	}
	if err := render.Board(player, player.Game); err != nil {
		return 0, err
	}
	return consts.StateTable, nil
}

func (*welcome) Exit(player *database.Player) consts.StateID {
	return 0
}
