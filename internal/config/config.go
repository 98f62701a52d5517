package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env         string `yaml:"env" env:"ENV" env-default:"local"`
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-required:"true"`
	RedisAddr   string `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	HTTPServer  `yaml:"http_server"`
	Auth        `yaml:"auth"`
	Hospital    `yaml:"hospital"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" env-default:"localhost:8080"`
	Timeout         time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"15s"`
}

type Auth struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL  time.Duration `yaml:"token_ttl" env-default:"24h"`
}

// Hospital carries the facility identity used in booking confirmations
// and the single operating time zone all slots are computed in.
type Hospital struct {
	Name     string `yaml:"name" env-default:"Sadiqabad Medical Complex"`
	Phone    string `yaml:"phone" env-default:"+92-300-1234567"`
	Whatsapp string `yaml:"whatsapp" env-default:"+92-300-1234567"`
	Email    string `yaml:"email" env-default:"info@sadiqabadmedical.com"`
	Address  string `yaml:"address" env-default:"Main Hospital Road, Sadiqabad, Punjab, Pakistan"`
	Timezone string `yaml:"timezone" env-default:"Asia/Karachi"`
}

func MustLoad() *Config {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("Config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	return &cfg
}
