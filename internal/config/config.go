package config

import (
	"fmt"
	"net"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Transport modes.
const (
	TransportTCP  = "tcp"
	TransportUnix = "unix"
)

type Config struct {
	LogLevel        string `yaml:"log-level" env:"CHESS_LOG_LEVEL" env-default:"info"`
	Transport       string `yaml:"transport" env:"CHESS_TRANSPORT" env-default:"tcp"`
	Host            string `yaml:"host" env:"CHESS_HOST" env-default:"127.0.0.1"`
	Port            string `yaml:"port" env:"CHESS_PORT" env-default:"2000"`
	SocketPath      string `yaml:"socket-path" env:"CHESS_SOCKET_PATH" env-default:"/tmp/chess_server.sock"`
	GameFile        string `yaml:"game-file" env:"CHESS_GAME_FILE" env-default:""`
	UploadChunkSize int    `yaml:"upload-chunk-size" env:"CHESS_UPLOAD_CHUNK_SIZE" env-default:"4096"`
}

// MustLoad - loads all configuration from config.yml, falling back to
// environment defaults when the file is absent.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load config from environment: %w", err))
		}
		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// GetServerAddr - returns the host:port address for TCP mode.
func (that *Config) GetServerAddr() string {
	return net.JoinHostPort(that.Host, that.Port)
}
