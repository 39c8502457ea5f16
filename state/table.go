package state

import (
	"context"
	"errors"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/haipai/consts"
	"github.com/ratel-online/haipai/database"
	"github.com/ratel-online/haipai/mahjong/command"
	"github.com/ratel-online/haipai/mahjong/event"
	"github.com/ratel-online/haipai/mahjong/game"
	"github.com/ratel-online/haipai/render"
)

type table struct{}

func (*table) Next(player *database.Player) (consts.StateID, error) {
	line, err := player.AskForString(askTimeout)
	if err != nil {
		if errors.Is(err, consts.ErrorsTimeout) {
			_ = player.WriteError(err)
			return 0, consts.ErrorsExist
		}
		return 0, player.WriteError(err)
	}
	before := len(player.Game.Discards())
	tsumogiri := false
	switch cmd := command.Parse(line).(type) {
	case command.Haipai:
		deal(player)
	case command.Tsumogiri:
		tsumogiri = true
		err = player.Game.Tsumogiri()
	case command.Discard:
		err = player.Game.Discard(string(cmd.Tile))
	case command.Unknown:
		if err := render.Error(player, consts.ErrorsInputInvalid); err != nil {
			return 0, err
		}
		return 0, render.Help(player)
	}
	if discards := player.Game.Discards(); len(discards) > before {
		event.TileDiscarded.Emit(event.TileDiscardedPayload{
			PlayerName: player.Name,
			Tile:       discards[len(discards)-1],
			Tsumogiri:  tsumogiri,
			Remaining:  player.Game.Remaining(),
		})
	}
	if saveErr := player.SaveGame(context.Background()); saveErr != nil {
		log.Error(saveErr)
	}
	switch {
	case err == nil:
		return 0, render.Board(player, player.Game)
	case errors.Is(err, game.ErrWallExhausted):
		return 0, render.Exhausted(player, player.Game)
	default:
		return 0, render.Error(player, tableError(err))
	}
}

func (*table) Exit(player *database.Player) consts.StateID {
	if err := player.SaveGame(context.Background()); err != nil {
		log.Error(err)
	}
	if player.Online() {
		_ = render.Goodbye(player, player.Name)
	}
	return 0
}

func deal(player *database.Player) {
	player.Game = game.Haipai(newRand())
	event.HandDealt.Emit(event.HandDealtPayload{
		PlayerName: player.Name,
		Indicators: player.Game.Indicators(),
	})
}

func tableError(err error) error {
	switch {
	case errors.Is(err, game.ErrUnknownTile):
		return consts.ErrorsUnknownTile
	case errors.Is(err, game.ErrTileNotInHand):
		return consts.ErrorsTileNotInHand
	case errors.Is(err, game.ErrEmptyHand):
		return consts.ErrorsEmptyHand
	case errors.Is(err, game.ErrWallExhausted):
		return consts.ErrorsWallExhausted
	}
	return err
}
