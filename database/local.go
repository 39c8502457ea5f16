package database

import (
	"bufio"
	"io"
	"strings"

	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/haipai/consts"
)

// stdioConn lets the table run against a terminal instead of a socket.
type stdioConn struct {
	reader *bufio.Reader
	writer io.Writer
	prompt string
}

func NewStdioConn(r io.Reader, w io.Writer) Conn {
	return &stdioConn{reader: bufio.NewReader(r), writer: w, prompt: "> "}
}

func (c *stdioConn) Read() (*protocol.Packet, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil && line == "" {
		return nil, err
	}
	return &protocol.Packet{Body: []byte(strings.TrimSpace(line))}, nil
}

func (c *stdioConn) Write(packet protocol.Packet) error {
	body := string(packet.Body)
	if body == consts.IsStop {
		return nil
	}
	if body == consts.IsStart {
		body = c.prompt
	}
	_, err := io.WriteString(c.writer, body)
	return err
}

func (c *stdioConn) Close() error {
	return nil
}
