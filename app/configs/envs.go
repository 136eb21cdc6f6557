package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	Port         string
	AppEnv       string
	StorePath    string
	RedisAddr    string
	FormRelayURL string
	AppAuthKey   string
	AppEncKey    string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	env := ENV{
		Port:         os.Getenv("APP_PORT"),
		AppEnv:       os.Getenv("APP_ENV"),
		StorePath:    os.Getenv("STORE_PATH"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		FormRelayURL: os.Getenv("FORM_RELAY_URL"),
		AppAuthKey:   os.Getenv("APP_AUTH_KEY"),
		AppEncKey:    os.Getenv("APP_ENC_KEY"),
	}

	if env.Port == "" {
		env.Port = ":8080"
	}
	if env.StorePath == "" {
		env.StorePath = "brightify.db"
	}

	return env
}
