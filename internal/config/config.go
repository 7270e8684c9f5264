package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Загрузка конфигурации из config.yaml через cleanenv

type Config struct {
	Server ServerConfig `yaml:"server"`
	Prices PricesConfig `yaml:"prices"`
	Logger LoggerConfig `yaml:"logger"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type PricesConfig struct {
	// Каталог с CSV-файлами цен; путь задаётся конфигурацией,
	// а не зашивается в код
	DataDir string `yaml:"data_dir" env:"PRICES_DATA_DIR" env-default:"./prices"`
}

type LoggerConfig struct {
	Level  string `yaml:"level"  env-default:"info"` // debug|info|warn|error
	Format string `yaml:"format" env-default:"text"` // text|json
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}

	// Try to read from config file if specified
	configPath := fetchConfigPath()
	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
			return nil, err
		}
	}

	// Read from environment variables
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func fetchConfigPath() string {
	var res string
	flag.StringVar(&res, "c", "", "config file path")
	flag.Parse()
	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
