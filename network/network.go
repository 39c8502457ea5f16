package network

import (
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/haipai/consts"
	"github.com/ratel-online/haipai/database"
	"github.com/ratel-online/haipai/state"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

func handle(rwc protocol.ReadWriteCloser) error {
	c := network.Wrapper(rwc)
	log.Info("new player connected! ")
	authInfo, err := loginAuth(c, consts.AuthTimeout)
	if err == nil && authInfo.ID == 0 {
		err = consts.ErrorsAuthFail
	}
	if err != nil {
		_ = c.Write(protocol.ErrorPacket(err))
		if closeErr := c.Close(); closeErr != nil {
			log.Error(closeErr)
		}
		return err
	}
	if previous := database.GetPlayer(authInfo.ID); previous != nil {
		log.Infof("player %s connected again, dropping the old session\n", previous)
		_ = previous.Close()
	}
	player := database.Connected(c, authInfo)
	log.Infof("player auth accessed, %d:%s\n", authInfo.ID, authInfo.Name)
	async.Async(func() {
		state.Run(player)
		_ = player.Close()
	})
	defer player.Offline()
	return player.Listening()
}

func loginAuth(c *network.Conn, timeout time.Duration) (*model.AuthInfo, error) {
	authChan := make(chan *model.AuthInfo, 1)
	async.Async(func() {
		packet, err := c.Read()
		if err != nil {
			log.Error(err)
			return
		}
		authInfo := &model.AuthInfo{}
		err = packet.Unmarshal(authInfo)
		if err != nil {
			log.Error(err)
			return
		}
		authChan <- authInfo
	})
	select {
	case authInfo := <-authChan:
		return authInfo, nil
	case <-time.After(timeout):
		return nil, consts.ErrorsAuthFail
	}
}
