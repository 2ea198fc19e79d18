package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPPort    int    `env:"DAILYAPPS_HTTP_PORT"`
	LogLevel    string `env:"DAILYAPPS_LOG_LEVEL"`
	CORSOrigins []string

	KafkaBrokerURL          string `env:"KAFKA_BROKER_URL"`
	KafkaNotificationsTopic string `env:"KAFKA_NOTIFICATIONS_TOPIC"`

	OutboxPollInterval time.Duration `env:"OUTBOX_POLL_INTERVAL"`
	OutboxPollTimeout  time.Duration `env:"OUTBOX_POLL_TIMEOUT"`
	OutboxBatchSize    int           `env:"OUTBOX_BATCH_SIZE"`

	EntreePrepDelayScale float64 `env:"ENTREE_PREP_DELAY_SCALE"`
	HistorySummaryLimit  int     `env:"HISTORY_SUMMARY_LIMIT"`

	RequestTimeout time.Duration `env:"DAILYAPPS_REQUEST_TIMEOUT"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}

	cfg.HTTPPort = getEnvAsInt("DAILYAPPS_HTTP_PORT", 8080)
	cfg.LogLevel = getEnvOrDefault("DAILYAPPS_LOG_LEVEL", "info")
	cfg.CORSOrigins = splitList(getEnvOrDefault("DAILYAPPS_CORS_ORIGINS", "*"))

	cfg.KafkaBrokerURL = getEnvOrDefault("KAFKA_BROKER_URL", "")
	cfg.KafkaNotificationsTopic = getEnvOrDefault("KAFKA_NOTIFICATIONS_TOPIC", "messenger_notifications")

	cfg.OutboxPollInterval = getEnvAsDuration("OUTBOX_POLL_INTERVAL", 1*time.Second)
	cfg.OutboxPollTimeout = getEnvAsDuration("OUTBOX_POLL_TIMEOUT", 500*time.Millisecond)
	cfg.OutboxBatchSize = getEnvAsInt("OUTBOX_BATCH_SIZE", 10)

	cfg.EntreePrepDelayScale = getEnvAsFloat("ENTREE_PREP_DELAY_SCALE", 0.001)
	cfg.HistorySummaryLimit = getEnvAsInt("HISTORY_SUMMARY_LIMIT", 10)

	cfg.RequestTimeout = getEnvAsDuration("DAILYAPPS_REQUEST_TIMEOUT", 30*time.Second)

	return cfg, nil
}

// KafkaEnabled reports whether notifications go to a broker instead of the log.
func (c *Config) KafkaEnabled() bool {
	return len(c.GetKafkaBrokers()) > 0
}

func (c *Config) GetKafkaBrokers() []string {
	return splitList(c.KafkaBrokerURL)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnvOrDefault(key, strconv.Itoa(defaultValue))
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnvOrDefault(key, strconv.FormatFloat(defaultValue, 'f', -1, 64))
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil && value >= 0 {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnvOrDefault(key, defaultValue.String())
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
