package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret   string
	JWTTTLHours int

	// ✅ Redis Config (public listing cache)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// ✅ Kafka Config (event activity pipeline)
	KafkaBrokers []string
	KafkaTopic   string
	KafkaEnabled bool

	// ✅ OpenAI Config (description assist)
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	OpenAITimeout time.Duration

	// Per-IP request budget on the AI route group
	AIRateLimit  int64
	AIRatePeriod time.Duration

	// Uploads
	UploadDir string
	BaseURL   string

	// When true, passwords must contain upper/lower/digit/special
	PasswordStrict bool
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	ttl, _ := strconv.Atoi(getEnv("JWT_TTL_HOURS", "24"))
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	aiTimeout, _ := strconv.Atoi(getEnv("OPENAI_TIMEOUT_SECONDS", "10"))
	aiRateLimit, _ := strconv.ParseInt(getEnv("AI_RATE_LIMIT", "10"), 10, 64)
	aiRatePeriod, _ := strconv.Atoi(getEnv("AI_RATE_PERIOD_SECONDS", "60"))
	kafkaEnabled, _ := strconv.ParseBool(getEnv("KAFKA_ENABLED", "false"))
	strict, _ := strconv.ParseBool(getEnv("PASSWORD_STRICT", "false"))

	var brokers []string
	for _, b := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	return &Config{
		Port: getEnv("PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "eventhub"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),
		JWTTTLHours: ttl,

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		KafkaBrokers: brokers,
		KafkaTopic:   getEnv("KAFKA_TOPIC", "event-activity"),
		KafkaEnabled: kafkaEnabled && len(brokers) > 0,

		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o"),
		OpenAITimeout: time.Duration(aiTimeout) * time.Second,

		AIRateLimit:  aiRateLimit,
		AIRatePeriod: time.Duration(aiRatePeriod) * time.Second,

		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),
		BaseURL:   getEnv("BASE_URL", "http://localhost:8080"),

		PasswordStrict: strict,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
