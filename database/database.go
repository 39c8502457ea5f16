package database

import (
	"sort"

	"github.com/awesome-cap/hashmap"
	modelx "github.com/ratel-online/core/model"
)

var players = hashmap.New()

var store Store

// UseStore sets where unfinished hands are kept. nil disables persistence.
func UseStore(s Store) {
	store = s
}

func Connected(conn Conn, info *modelx.AuthInfo) *Player {
	player := &Player{
		ID:    info.ID,
		Name:  info.Name,
		Score: info.Score,
	}
	player.Conn(conn)
	player.State(0)
	players.Set(player.ID, player)
	return player
}

func disconnected(player *Player) {
	if current := GetPlayer(player.ID); current == player {
		players.Del(player.ID)
	}
}

func GetPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

func OnlinePlayers() []*Player {
	list := make([]*Player, 0)
	players.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Player))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}
