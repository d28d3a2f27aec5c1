package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort      string   `env:"HTTP_PORT" envDefault:"8080"`
	JWTSecret     string   `env:"JWT_SECRET,required"`
	JWTTTLMinutes int      `env:"JWT_TTL_MINUTES" envDefault:"60"`
	BcryptCost    int      `env:"BCRYPT_COST" envDefault:"10"`
	CORSOrigins   []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
