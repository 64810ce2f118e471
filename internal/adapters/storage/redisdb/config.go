package redisdb

import (
	"net"
	"time"
)

type Config struct {
	Host         string        `env:"REDIS_HOST" envDefault:"localhost"`
	Port         string        `env:"REDIS_PORT" envDefault:"6379"`
	Password     string        `env:"REDIS_PASSWORD" envDefault:""`
	DB           int           `env:"REDIS_DB" envDefault:"0"`
	Timeout      time.Duration `env:"REDIS_TIMEOUT" envDefault:"1s"`
	Retries      int           `env:"REDIS_RETRIES" envDefault:"3"`
	RetryBackoff time.Duration `env:"REDIS_RETRY_BACKOFF" envDefault:"500ms"`
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}
