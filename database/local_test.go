package database_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/haipai/consts"
	"github.com/ratel-online/haipai/database"
	"github.com/stretchr/testify/require"
)

func TestStdioConn(t *testing.T) {
	out := &bytes.Buffer{}
	conn := database.NewStdioConn(strings.NewReader("1m\n  t  \nlast"), out)

	for _, expected := range []string{"1m", "t", "last"} {
		packet, err := conn.Read()
		require.NoError(t, err)
		require.Equal(t, expected, string(packet.Body))
	}
	_, err := conn.Read()
	require.ErrorIs(t, err, io.EOF)

	require.NoError(t, conn.Write(protocol.Packet{Body: []byte(consts.IsStart)}))
	require.NoError(t, conn.Write(protocol.Packet{Body: []byte("board\n")}))
	require.NoError(t, conn.Write(protocol.Packet{Body: []byte(consts.IsStop)}))
	require.Equal(t, "> board\n", out.String())
	require.NoError(t, conn.Close())
}
