package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/ratel-online/core/log"
	modelx "github.com/ratel-online/core/model"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/haipai/config"
	"github.com/ratel-online/haipai/database"
	"github.com/ratel-online/haipai/network"
	"github.com/ratel-online/haipai/render"
	"github.com/ratel-online/haipai/state"
	"github.com/spf13/cobra"
)

var configFile string

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	root := &cobra.Command{
		Use:           "haipai",
		Short:         "Solo mahjong practice table",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (yaml, toml or json)")
	root.AddCommand(serveCmd(), playCmd())
	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the table over tcp and websocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, closeStore, err := setup()
			if err != nil {
				return err
			}
			defer closeStore()
			if conf.Server.Websocket != "" {
				async.Async(func() {
					log.Error(network.NewWebsocketServer(conf.Server.Websocket).Serve())
				})
			}
			return network.NewTcpServer(conf.Server.TCP).Serve()
		},
	}
}

func playCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play at the table in this terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, closeStore, err := setup()
			if err != nil {
				return err
			}
			defer closeStore()
			conn := database.NewStdioConn(os.Stdin, color.Output)
			player := database.Connected(conn, &modelx.AuthInfo{ID: conf.Play.ID, Name: conf.Play.Name})
			async.Async(func() {
				defer player.Offline()
				_ = player.Listening()
			})
			state.Run(player)
			return nil
		},
	}
}

func setup() (*config.Config, func(), error) {
	conf, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	render.UseColor(conf.Render.Color)
	state.SetTimeout(conf.Table.Timeout)
	closeStore := func() {}
	if conf.Store.Path != "" {
		store, err := database.NewSQLiteStore(conf.Store.Path)
		if err != nil {
			return nil, nil, err
		}
		database.UseStore(store)
		closeStore = func() {
			if err := store.Close(); err != nil {
				log.Error(err)
			}
		}
	}
	return conf, closeStore, nil
}
