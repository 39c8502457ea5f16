package state_test

import (
	"io"
	"math/rand"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	modelx "github.com/ratel-online/core/model"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/haipai/consts"
	"github.com/ratel-online/haipai/database"
	"github.com/ratel-online/haipai/mahjong/tile"
	"github.com/ratel-online/haipai/render"
	"github.com/ratel-online/haipai/state"
	"github.com/stretchr/testify/require"
)

type scriptConn struct {
	sync.Mutex
	in  chan *protocol.Packet
	out strings.Builder
}

func newScriptConn(lines ...string) *scriptConn {
	c := &scriptConn{in: make(chan *protocol.Packet, len(lines))}
	for _, line := range lines {
		c.in <- &protocol.Packet{Body: []byte(line)}
	}
	return c
}

func (c *scriptConn) Read() (*protocol.Packet, error) {
	packet, ok := <-c.in
	if !ok {
		return nil, io.EOF
	}
	return packet, nil
}

func (c *scriptConn) Write(packet protocol.Packet) error {
	c.Lock()
	defer c.Unlock()
	body := string(packet.Body)
	if body != consts.IsStart && body != consts.IsStop {
		c.out.WriteString(body)
	}
	return nil
}

func (c *scriptConn) Close() error {
	return nil
}

func (c *scriptConn) output() string {
	c.Lock()
	defer c.Unlock()
	return c.out.String()
}

func play(t *testing.T, id int64, lines ...string) (*database.Player, *scriptConn) {
	t.Helper()
	conn := newScriptConn(lines...)
	player := database.Connected(conn, &modelx.AuthInfo{ID: id, Name: "tester"})
	go func() {
		_ = player.Listening()
	}()
	state.Run(player)
	return player, conn
}

func seeded(t *testing.T) {
	render.UseColor(false)
	t.Cleanup(state.SetRand(func() *rand.Rand {
		return rand.New(rand.NewSource(7))
	}))
}

func TestTable(t *testing.T) {
	seeded(t)

	t.Run("tsumogiri_twice", func(t *testing.T) {
		player, conn := play(t, 201, "t", "ツモ切り", "exit")
		require.Len(t, player.Game.Discards(), 2)
		require.Len(t, player.Game.Hand(), 14)
		require.Equal(t, 119, player.Game.Remaining())
		out := conn.output()
		require.Contains(t, out, "Hi tester")
		require.Contains(t, out, "残り 119 枚")
		require.Contains(t, out, "Bye tester")
	})

	t.Run("unknown_input_reprompts", func(t *testing.T) {
		player, conn := play(t, 202, "xyz", "exit")
		require.Empty(t, player.Game.Discards())
		require.Contains(t, conn.output(), consts.ErrorsInputInvalid.Msg)
		require.Contains(t, conn.output(), "Commands:")
	})

	t.Run("discard_named_tile", func(t *testing.T) {
		first, _ := play(t, 203, "exit")
		name := string(first.Game.Hand()[0])

		player, _ := play(t, 203, name, "exit")
		require.Equal(t, []tile.Tile{tile.Tile(name)}, player.Game.Discards())
	})

	t.Run("haipai_deals_again", func(t *testing.T) {
		player, _ := play(t, 204, "t", "haipai", "exit")
		require.Empty(t, player.Game.Discards())
		require.Equal(t, 121, player.Game.Remaining())
	})

	t.Run("unknown_tile", func(t *testing.T) {
		player, conn := play(t, 205, "3ピ", "exit")
		require.Empty(t, player.Game.Discards())
		require.Contains(t, conn.output(), consts.ErrorsInputInvalid.Msg)
	})
}

func TestResume(t *testing.T) {
	seeded(t)
	store, err := database.NewSQLiteStore(filepath.Join(t.TempDir(), "haipai.db"))
	require.NoError(t, err)
	database.UseStore(store)
	t.Cleanup(func() {
		database.UseStore(nil)
		_ = store.Close()
	})

	first, _ := play(t, 301, "t", "t", "t", "exit")
	require.Len(t, first.Game.Discards(), 3)

	second, conn := play(t, 301, "exit")
	require.Contains(t, conn.output(), "Resuming")
	require.Equal(t, first.Game.Snapshot(), second.Game.Snapshot())
}
