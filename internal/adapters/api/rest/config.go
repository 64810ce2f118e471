package rest

// Config конфигурация REST сервиса.
type Config struct {
	Addr string `env:"SERVER_ADDRESS" envDefault:":8080"`
}
