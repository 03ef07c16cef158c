package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort     string
	Environment    string
	DataPath       string
	StoreName      string
	WhatsAppNumber string
	CountdownHours int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		DataPath:       getEnv("DATA_PATH", "./data"),
		StoreName:      getEnv("STORE_NAME", "Heritage Flavors"),
		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "919000000000"),
		CountdownHours: getEnvAsInt64("COUNTDOWN_HOURS", 72), // 3 day festive window
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
