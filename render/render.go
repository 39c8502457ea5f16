package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/ratel-online/haipai/mahjong/command"
	"github.com/ratel-online/haipai/mahjong/game"
)

// Writer is anything the table can talk to, usually a *database.Player.
type Writer interface {
	WriteString(data string) error
}

var (
	title = color.New(color.FgHiGreen, color.Bold).SprintFunc()
	label = color.New(color.FgHiCyan).SprintFunc()
	hint  = color.New(color.FgHiYellow).SprintFunc()
	alert = color.New(color.FgHiRed).SprintFunc()
)

// UseColor switches ANSI colouring on or off for everything rendered.
func UseColor(enabled bool) {
	color.NoColor = !enabled
}

func Welcome(w Writer, name string) error {
	return w.WriteString(fmt.Sprintf("%s\n", title(fmt.Sprintf("Hi %s, welcome to the haipai table! ", name))))
}

func Help(w Writer) error {
	return w.WriteString(HelpText())
}

func HelpText() string {
	buf := bytes.Buffer{}
	buf.WriteString(hint("Commands:") + "\n")
	buf.WriteString(fmt.Sprintf("  %-10s %s\n", "haipai", strings.Join(command.HaipaiAliases, " / ")))
	buf.WriteString(fmt.Sprintf("  %-10s %s\n", "tsumogiri", strings.Join(command.TsumogiriAliases, " / ")))
	buf.WriteString(fmt.Sprintf("  %-10s %s\n", "discard", "1m 2sou 3ぴん 一まん ton nan sya pei haku hatsu chun 東 發 ..."))
	buf.WriteString(fmt.Sprintf("  %-10s %s\n", "exit", "leave the table, the hand is kept"))
	return buf.String()
}

func Board(w Writer, g *game.Game) error {
	return w.WriteString(BoardText(g))
}

// BoardText frames the game display with coloured labels. The glyph rows
// are written exactly as game.Game renders them.
func BoardText(g *game.Game) string {
	buf := bytes.Buffer{}
	buf.WriteString(label("捨て牌") + "\n")
	if sutehai := g.Sutehai(); sutehai != "" {
		buf.WriteString(sutehai + "\n")
	}
	buf.WriteString("\n" + label("ドラ表示") + "\n")
	buf.WriteString(g.Wanpai() + "\n")
	buf.WriteString("\n" + label("手牌") + "\n")
	buf.WriteString(g.Tehai() + " " + g.Tsumohai() + "\n")
	buf.WriteString(hint(fmt.Sprintf("残り %d 枚", g.Remaining())) + "\n")
	return buf.String()
}

func Exhausted(w Writer, g *game.Game) error {
	return w.WriteString(BoardText(g) + alert("流局: the wall is exhausted, type haipai for a new hand.") + "\n")
}

func Error(w Writer, err error) error {
	return w.WriteString(alert(err.Error()) + "\n")
}

func Goodbye(w Writer, name string) error {
	return w.WriteString(fmt.Sprintf("Bye %s, your hand has been kept. \n", name))
}
