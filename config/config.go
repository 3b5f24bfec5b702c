package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string
	CsvPath    string
	TgToken    string
	TgChatId   string
}

var (
	config *Config
	once   sync.Once
)

// GetConfig возвращает singleton экземпляр конфигурации
func GetConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file, using environment and defaults")
		}

		config = &Config{
			ListenAddr: getenv("LISTEN_ADDR", ":8005"),
			CsvPath:    getenv("CSV_PATH", "Car_sales.csv"),
			TgToken:    os.Getenv("TG_TOKEN"),
			TgChatId:   os.Getenv("TG_CHAT"),
		}
	})
	return config
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
