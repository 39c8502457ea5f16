package database_test

import (
	"io"
	"strings"
	"sync"

	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/haipai/consts"
)

type fakeConn struct {
	sync.Mutex
	in     chan *protocol.Packet
	out    strings.Builder
	closed bool
}

func newFakeConn() *fakeConn {
	return &fakeConn{in: make(chan *protocol.Packet, 16)}
}

func (c *fakeConn) send(lines ...string) {
	for _, line := range lines {
		c.in <- &protocol.Packet{Body: []byte(line)}
	}
}

func (c *fakeConn) Read() (*protocol.Packet, error) {
	packet, ok := <-c.in
	if !ok {
		return nil, io.EOF
	}
	return packet, nil
}

func (c *fakeConn) Write(packet protocol.Packet) error {
	c.Lock()
	defer c.Unlock()
	body := string(packet.Body)
	if body == consts.IsStart || body == consts.IsStop {
		return nil
	}
	c.out.WriteString(body)
	return nil
}

func (c *fakeConn) Close() error {
	c.Lock()
	defer c.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) output() string {
	c.Lock()
	defer c.Unlock()
	return c.out.String()
}
