package database

import (
	"context"
	"errors"
	"fmt"
	stringx "strings"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/haipai/consts"
	"github.com/ratel-online/haipai/mahjong/game"
)

// Conn is the packet transport behind a player. *network.Conn satisfies it.
type Conn interface {
	Read() (*protocol.Packet, error)
	Write(packet protocol.Packet) error
	Close() error
}

type Player struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Score int64  `json:"score"`

	// Game is the hand in play, owned by the player's state goroutine.
	Game *game.Game `json:"-"`

	conn   Conn
	data   chan *protocol.Packet
	state  consts.StateID
	online bool
}

func (p *Player) Write(bytes []byte) error {
	return p.conn.Write(protocol.Packet{
		Body: bytes,
	})
}

func (p *Player) Offline() {
	p.online = false
	_ = p.conn.Close()
	close(p.data)
	disconnected(p)
	log.Infof("player %s offline\n", p)
}

// Close drops the connection. Listening returns and Offline follows.
func (p *Player) Close() error {
	return p.conn.Close()
}

func (p *Player) Online() bool {
	return p.online
}

// Listening forwards packets from the connection until it fails.
func (p *Player) Listening() error {
	for {
		pack, err := p.conn.Read()
		if err != nil {
			return err
		}
		p.data <- pack
	}
}

func (p *Player) WriteString(data string) error {
	return p.conn.Write(protocol.Packet{
		Body: []byte(data),
	})
}

func (p *Player) WriteObject(data interface{}) error {
	return p.conn.Write(protocol.Packet{
		Body: json.Marshal(data),
	})
}

// WriteError reports err to the client. Errors that end the session are
// returned to the caller instead.
func (p *Player) WriteError(err error) error {
	var e consts.Error
	if errors.As(err, &e) && e.Exit {
		return err
	}
	return p.conn.Write(protocol.Packet{
		Body: []byte(err.Error() + "\n"),
	})
}

func (p *Player) AskForPacket(timeout ...time.Duration) (*protocol.Packet, error) {
	p.StartTransaction()
	defer p.StopTransaction()
	return p.askForPacket(timeout...)
}

func (p *Player) askForPacket(timeout ...time.Duration) (*protocol.Packet, error) {
	var packet *protocol.Packet
	if len(timeout) > 0 && timeout[0] > 0 {
		select {
		case packet = <-p.data:
		case <-time.After(timeout[0]):
			return nil, consts.ErrorsTimeout
		}
	} else {
		packet = <-p.data
	}
	if packet == nil {
		return nil, consts.ErrorsChanClosed
	}
	single := stringx.ToLower(stringx.TrimSpace(packet.String()))
	if single == "exit" {
		return nil, consts.ErrorsExist
	}
	return packet, nil
}

func (p *Player) AskForString(timeout ...time.Duration) (string, error) {
	packet, err := p.AskForPacket(timeout...)
	if err != nil {
		return "", err
	}
	return stringx.TrimSpace(packet.String()), nil
}

func (p *Player) StartTransaction() {
	_ = p.WriteString(consts.IsStart)
}

func (p *Player) StopTransaction() {
	_ = p.WriteString(consts.IsStop)
}

func (p *Player) State(s consts.StateID) {
	p.state = s
}

func (p *Player) GetState() consts.StateID {
	return p.state
}

func (p *Player) Conn(conn Conn) {
	p.conn = conn
	p.data = make(chan *protocol.Packet, 8)
	p.online = true
}

// SaveGame stores the hand in play. It is a no-op without a store or a game.
func (p *Player) SaveGame(ctx context.Context) error {
	if store == nil || p.Game == nil {
		return nil
	}
	return store.Save(ctx, p.ID, p.Game.Snapshot())
}

// LoadGame restores the stored hand, if any, into p.Game.
func (p *Player) LoadGame(ctx context.Context) (bool, error) {
	if store == nil {
		return false, nil
	}
	snapshot, ok, err := store.Load(ctx, p.ID)
	if err != nil || !ok {
		return false, err
	}
	p.Game = game.Restore(snapshot)
	return true, nil
}

func (p Player) String() string {
	return fmt.Sprintf("%s[%d]", p.Name, p.ID)
}
