package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConf `mapstructure:"server"`
	Store  StoreConf  `mapstructure:"store"`
	Table  TableConf  `mapstructure:"table"`
	Render RenderConf `mapstructure:"render"`
	Play   PlayConf   `mapstructure:"play"`
}

type ServerConf struct {
	TCP       string `mapstructure:"tcp"`
	Websocket string `mapstructure:"websocket"`
}

// StoreConf points at the SQLite file holding unfinished hands. An empty
// path disables persistence.
type StoreConf struct {
	Path string `mapstructure:"path"`
}

type TableConf struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type RenderConf struct {
	Color bool `mapstructure:"color"`
}

// PlayConf identifies the local player of the play command.
type PlayConf struct {
	ID   int64  `mapstructure:"id"`
	Name string `mapstructure:"name"`
}

const EnvPrefix = "HAIPAI"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.tcp", ":9999")
	v.SetDefault("server.websocket", ":9998")
	v.SetDefault("store.path", "haipai.db")
	v.SetDefault("table.timeout", 10*time.Minute)
	v.SetDefault("render.color", true)
	v.SetDefault("play.id", 1)
	v.SetDefault("play.name", "player")
}

// Load reads defaults, then the optional config file, then HAIPAI_*
// environment variables (HAIPAI_SERVER_TCP overrides server.tcp).
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, err
	}
	return conf, nil
}
