package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string         `yaml:"env" env-default:"local"`
	DatabaseUrl string         `yaml:"database_url" env:"DATABASE_URL" env-required:"true"`
	Server      ServerConfig   `yaml:"rest"`
	JWT         JWTSecret      `yaml:"jwt"`
	Frontend    FrontendConfig `yaml:"frontend"`
	Artifact    ArtifactConfig `yaml:"artifact"`
	Payment     PaymentConfig  `yaml:"payment"`
}

type ServerConfig struct {
	Port string `yaml:"port" env-default:"8080"`
}

type JWTSecret struct {
	Secret string `yaml:"secret" env:"JWT_SECRET" env-required:"true"`
}

type FrontendConfig struct {
	URL string `yaml:"url" env-default:"http://localhost:3000"`
}

// ArtifactConfig points at the external QR image service.
type ArtifactConfig struct {
	URL string `yaml:"url" env-default:"https://api.qrserver.com/v1/create-qr-code/"`
}

// PaymentConfig carries the external checkout the upgrade responses redirect
// to. Payment processing itself is not part of this service.
type PaymentConfig struct {
	CheckoutURL string `yaml:"checkout_url" env-default:"http://localhost:3000/upgrade"`
}

func MustLoad() *Config {
	path := fetchConfigPath()

	if path == "" {
		panic("config file not found in path")
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		panic("config file not found in path")
	}

	var config Config
	log.Printf("loading config from %s", path)
	if err := cleanenv.ReadConfig(path, &config); err != nil {
		panic(err)
	}
	return &config
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "config path")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	if res == "" {
		res = "./config/local.yaml"
	}
	return res
}
