package config

type Config struct {
	Environment Environment
	Log         Log

	API     API     `envPrefix:"API_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Sandbox Sandbox `envPrefix:"SANDBOX_"`
}

type API struct {
	BaseURL string `env:"BASE_URL" envDefault:"https://api.sporthub.app/api"`
	// request ceiling in seconds; a timeout surfaces exactly like a
	// connectivity failure, callers cannot tell them apart
	TimeoutSeconds int `env:"TIMEOUT_SECONDS" envDefault:"30"`
}

type Storage struct {
	// sqlite file backing device storage (session keys + offline cache)
	Path string `env:"PATH" envDefault:"sporthub.db"`
}

type Sandbox struct {
	Host string `env:"HOST" envDefault:"127.0.0.1"`
	Port string `env:"PORT" envDefault:"8080"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}
