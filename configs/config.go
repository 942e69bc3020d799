package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	SERVER_PORT                   string
	WORKER_POOL                   string
	DB_URI                        string
	DB_NAME                       string
	DB_MAXPOOLSIZE                uint64
	DB_MINPOOLSIZE                uint64
	DB_MAXIDLETIME_INMINUTES      int
	KAFKA_SERVER                  string
	KAFKA_SECURITY_PROTOCOL       string
	KAFKA_SASL_MECHANISM          string
	KAFKA_SASL_USERNAME           string
	KAFKA_SASL_PASSWORD           string
	KAFKA_SESSION_TIMEOUT_MS      int
	KAFKA_CLIENT_ID               string
	KAFKA_TOPIC                   string
	KAFKA_RETRY_COUNT             int
	REDIS_ADDR                    string
	REDIS_PASSWORD                string
	REDIS_DB                      int
	REDIS_ENABLE_TLS              bool
	REDIS_CONNECT_TIMEOUT_SECONDS int
	REDIS_CERT_CONTENT            string
	PAYMENT_LOCK_TTL_SECONDS      int
	PROJECT_ID                    string
	PUBSUB_TOPIC                  string
	PUBSUB_ENABLED                bool
	SFTP_USER                     string
	SFTP_PASSWORD                 string
	SFTP_HOST                     string
	SFTP_PORT                     string
	SFTP_REMOTE_FILE_PATH         string
	REPORT_DIRECTORY_PATH         string
	REPORT_EVERY_X_HOURS          int
	SERVICE_NAME                  string
	OTEL_URL                      string
	LOG_LEVEL                     string
)

type RedisConfig struct {
	Addr           string        `yaml:"addr"`
	Password       string        `yaml:"password"`
	DB             int           `yaml:"db"`
	EnableTLS      bool          `yaml:"enable_tls"`
	ConnectTimeout time.Duration `yaml:"connect_timeout_seconds"`
	CertContent    string        `yaml:"cert_content"`
}

// LoadEnv loads the environment variables from a .env file
func LoadEnv() error {
	err := godotenv.Load("./../.env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	LoadEnvValues()

	return nil
}

func LoadEnvValues() {
	SERVER_PORT = GetEnv("SERVER_PORT", "8080")
	WORKER_POOL = GetEnv("WORKER_POOL", "5")
	DB_URI = GetEnv("DB_URI", "mongodb://localhost:27017/fintech?retryWrites=true&w=majority")
	DB_NAME = GetEnv("DB_NAME", "ApiFintech")
	DB_MAXPOOLSIZE, _ = strconv.ParseUint(GetEnv("DB_MAXPOOLSIZE", "100"), 10, 64)
	DB_MINPOOLSIZE, _ = strconv.ParseUint(GetEnv("DB_MINPOOLSIZE", "10"), 10, 64)
	DB_MAXIDLETIME_INMINUTES, _ = strconv.Atoi(GetEnv("DB_MAXIDLETIME_INMINUTES", "5"))

	KAFKA_SERVER = GetEnv("KAFKA_SERVER", "")
	KAFKA_SECURITY_PROTOCOL = GetEnv("KAFKA_SECURITY_PROTOCOL", "")
	KAFKA_SASL_MECHANISM = GetEnv("KAFKA_SASL_MECHANISM", "")
	KAFKA_SASL_USERNAME = GetEnv("KAFKA_SASL_USERNAME", "")
	KAFKA_SASL_PASSWORD = GetEnv("KAFKA_SASL_PASSWORD", "")
	KAFKA_SESSION_TIMEOUT_MS, _ = strconv.Atoi(GetEnv("KAFKA_SESSION_TIMEOUT_MS", "45000"))
	KAFKA_CLIENT_ID = GetEnv("KAFKA_CLIENT_ID", "api-fintech")
	KAFKA_TOPIC = GetEnv("KAFKA_TOPIC", "fintech.ledger.events")
	KAFKA_RETRY_COUNT, _ = strconv.Atoi(GetEnv("KAFKA_RETRY_COUNT", "3"))

	REDIS_ADDR = GetEnv("REDIS_ADDR", "localhost:6379")
	REDIS_PASSWORD = GetEnv("REDIS_PASSWORD", "")
	REDIS_DB, _ = strconv.Atoi(GetEnv("REDIS_DB", "0"))
	REDIS_ENABLE_TLS, _ = strconv.ParseBool(GetEnv("REDIS_ENABLE_TLS", "false"))
	REDIS_CONNECT_TIMEOUT_SECONDS, _ = strconv.Atoi(GetEnv("REDIS_CONNECT_TIMEOUT_SECONDS", "5"))
	REDIS_CERT_CONTENT = GetEnv("REDIS_CERT_CONTENT", "")
	PAYMENT_LOCK_TTL_SECONDS, _ = strconv.Atoi(GetEnv("PAYMENT_LOCK_TTL_SECONDS", "10"))

	PROJECT_ID = GetEnv("PROJECT_ID", "")
	PUBSUB_TOPIC = GetEnv("PUBSUB_TOPIC", "fintech-client-notifications")
	PUBSUB_ENABLED, _ = strconv.ParseBool(GetEnv("PUBSUB_ENABLED", "false"))

	SFTP_USER = GetEnv("SFTP_USER", "")
	SFTP_PASSWORD = GetEnv("SFTP_PASSWORD", "")
	SFTP_HOST = GetEnv("SFTP_HOST", "")
	SFTP_PORT = GetEnv("SFTP_PORT", "22")
	SFTP_REMOTE_FILE_PATH = GetEnv("SFTP_REMOTE_FILE_PATH", "/upload/ledgerReport")
	REPORT_DIRECTORY_PATH = GetEnv("REPORT_DIRECTORY_PATH", "/ledgerReport")
	REPORT_EVERY_X_HOURS, _ = strconv.Atoi(GetEnv("REPORT_EVERY_X_HOURS", "24"))

	SERVICE_NAME = GetEnv("SERVICE_NAME", "apifintech")
	OTEL_URL = GetEnv("OTEL_URL", "")
	LOG_LEVEL = GetEnv("LOG_LEVEL", "INFO")
}

// GetEnv fetches an environment variable falling back to a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:           REDIS_ADDR,
		Password:       REDIS_PASSWORD,
		DB:             REDIS_DB,
		EnableTLS:      REDIS_ENABLE_TLS,
		ConnectTimeout: time.Duration(REDIS_CONNECT_TIMEOUT_SECONDS) * time.Second,
		CertContent:    REDIS_CERT_CONTENT,
	}
}
