package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBName     string `yaml:"db_name"`
	ServerAddr string `yaml:"server_addr"`
}

// LoadConfig reads an optional YAML file named by NOTESAPI_CONFIG,
// then a .env file if one exists, with environment variables taking
// precedence over both.
func LoadConfig() Config {
	cfg := Config{
		ServerAddr: ":8000",
	}

	if path := os.Getenv("NOTESAPI_CONFIG"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(data, &cfg)
		}
	}

	// No .env file is fine, system environment is used as-is.
	_ = godotenv.Load()

	cfg.DBUser = getEnv("DB_USER", cfg.DBUser)
	cfg.DBPassword = getEnv("DB_PASSWORD", cfg.DBPassword)
	cfg.DBHost = getEnv("DB_HOST", cfg.DBHost)
	cfg.DBPort = getEnv("DB_PORT", cfg.DBPort)
	cfg.DBName = getEnv("DB_NAME", cfg.DBName)
	cfg.ServerAddr = getEnv("SERVER_ADDR", cfg.ServerAddr)

	return cfg
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}
