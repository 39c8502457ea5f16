package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateTable
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	AuthTimeout  = 3 * time.Second
	TableTimeout = 10 * time.Minute
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist        = NewErr(1, true, "Exit. ")
	ErrorsChanClosed   = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout      = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail     = NewErr(1, true, "Auth fail. ")

	ErrorsUnknownTile   = NewErr(2, false, "Unknown tile. ")
	ErrorsTileNotInHand = NewErr(2, false, "That tile is not in your hand. ")
	ErrorsEmptyHand     = NewErr(2, false, "Your hand is empty, deal a new one with haipai. ")
	ErrorsWallExhausted = NewErr(2, false, "The wall is exhausted, deal a new one with haipai. ")
)
