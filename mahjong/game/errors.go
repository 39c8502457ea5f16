package game

import "errors"

var (
	ErrUnknownTile   = errors.New("unknown tile")
	ErrTileNotInHand = errors.New("tile not in hand")
	ErrWallExhausted = errors.New("wall exhausted")
	ErrEmptyHand     = errors.New("empty hand")
)
