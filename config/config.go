package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port        string
	LogLevel    string
	CorsOrigins string

	DBDriver   string // postgres, mysql or sqlite
	DBDsn      string // takes precedence over the DB_HOST/... parts
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTKey      string
	JWTTTLHours int
	SaltRound   int

	AzureOpenAIEndpoint   string
	AzureOpenAIKey        string
	AzureOpenAIDeployment string
	AzureOpenAIAPIVersion string

	AzureSpeechKey    string
	AzureSpeechRegion string
	AzureSpeechVoice  string

	VoicevoxURL string

	NewsAPIKey     string
	NewsAPIURL     string
	NewsAPICountry string
	NewsSchedule   string // cron spec, empty disables the import job

	SupabaseURL        string
	SupabaseServiceKey string
	SupabaseBucket     string

	GoogleAPIKey string

	SendgridAPIKey string
	EmailSender    string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = FromEnv()

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.AzureOpenAIKey == "" {
		log.Println("Warning: AZURE_OPENAI_KEY is empty. /api/english/explain will be unavailable.")
	}
	if AppConfig.SupabaseServiceKey == "" {
		log.Println("Warning: SUPABASE_SERVICE_KEY is empty. Media uploads will be unavailable.")
	}
}

// FromEnv builds a Config from the current process environment without touching .env files
func FromEnv() *Config {
	return &Config{
		Port:        getEnv("PORT", "3000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CorsOrigins: getEnv("CORS_ORIGINS", "*"),

		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBDsn:      getEnv("DB_DSN", ""),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "careerhub"),
		DBPort:     getEnv("DB_PORT", "5432"),

		JWTKey:      getEnv("JWT_SECRET_KEY", "defaultSecret"),
		JWTTTLHours: getEnvInt("JWT_TTL_HOURS", 24),
		SaltRound:   getEnvInt("SALT_ROUND", 10),

		AzureOpenAIEndpoint:   getEnv("AZURE_OPENAI_ENDPOINT", ""),
		AzureOpenAIKey:        getEnv("AZURE_OPENAI_KEY", ""),
		AzureOpenAIDeployment: getEnv("AZURE_OPENAI_DEPLOYMENT", "gpt-4o-mini"),
		AzureOpenAIAPIVersion: getEnv("AZURE_OPENAI_API_VERSION", "2024-06-01"),

		AzureSpeechKey:    getEnv("AZURE_SPEECH_KEY", ""),
		AzureSpeechRegion: getEnv("AZURE_SPEECH_REGION", "japaneast"),
		AzureSpeechVoice:  getEnv("AZURE_SPEECH_VOICE", "en-US-JennyNeural"),

		VoicevoxURL: getEnv("VOICEVOX_URL", "http://localhost:50021"),

		NewsAPIKey:     getEnv("NEWSAPI_KEY", ""),
		NewsAPIURL:     getEnv("NEWSAPI_URL", "https://newsapi.org/v2"),
		NewsAPICountry: getEnv("NEWSAPI_COUNTRY", "us"),
		NewsSchedule:   getEnv("NEWS_SCHEDULE", ""),

		SupabaseURL:        strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_KEY", ""),
		SupabaseBucket:     getEnv("SUPABASE_BUCKET", "media"),

		GoogleAPIKey: getEnv("GOOGLE_API_KEY", ""),

		SendgridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@careerhub.local"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
