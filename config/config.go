package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort            string
	AppMode            string
	MongoURI           string
	MongoDB            string
	CORSOrigin         string
	JWTSecret          string
	ImageKitPrivateKey string
	UploadTokenTTLMin  int
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	ChatWritesPerMin   int
}

func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		AppPort:            getEnv("APP_PORT", "8080"),
		AppMode:            getEnv("APP_MODE", "debug"),
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:            getEnv("MONGO_DB", "nimbus_chat"),
		CORSOrigin:         getEnv("CORS_ORIGIN", "*"),
		JWTSecret:          getEnv("JWT_SECRET", "change-me"),
		ImageKitPrivateKey: getEnv("IMAGEKIT_PRIVATE_KEY", ""),
		UploadTokenTTLMin:  getEnvAsInt("UPLOAD_TOKEN_TTL_MIN", 30),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		ChatWritesPerMin:   getEnvAsInt("CHAT_WRITES_PER_MIN", 60),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
