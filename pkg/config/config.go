package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Relay    RelayConfig
	Email    EmailConfig
	Session  SessionConfig
	Uploads  UploadConfig
	Pipeline PipelineConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

type NATSConfig struct {
	URL string
}

type RelayConfig struct {
	Mode     string // form, mailersend, or dev
	Endpoint string
	Subject  string
	Template string
	ReplyTo  string
	Timeout  time.Duration
}

type EmailConfig struct {
	MailerSendKey string
	FromName      string
	FromEmail     string
	InboxEmail    string
}

type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

type UploadConfig struct {
	MaxDocumentBytes int64
	AllowedTypes     []string
}

type PipelineConfig struct {
	// AdditionalGuestPhones selects which additional guest slots must carry
	// a phone number: none, second, or all.
	AdditionalGuestPhones string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Relay: RelayConfig{
			Mode:     getEnv("RELAY_MODE", "dev"),
			Endpoint: getEnv("RELAY_ENDPOINT", "https://formsubmit.co/ajax/bookings@villamarstays.com"),
			Subject:  getEnv("RELAY_SUBJECT", "New booking enquiry"),
			Template: getEnv("RELAY_TEMPLATE", "table"),
			ReplyTo:  getEnv("RELAY_REPLY_TO", "bookings@villamarstays.com"),
			Timeout:  getDuration("RELAY_TIMEOUT", 30*time.Second),
		},
		Email: EmailConfig{
			MailerSendKey: getEnv("MAILERSEND_API_KEY", ""),
			FromName:      getEnv("MAIL_FROM_NAME", "Villamar Stays"),
			FromEmail:     getEnv("MAIL_FROM_EMAIL", "noreply@villamarstays.com"),
			InboxEmail:    getEnv("MAIL_INBOX_EMAIL", "bookings@villamarstays.com"),
		},
		Session: SessionConfig{
			TTL:           getDuration("SESSION_TTL", 45*time.Minute),
			SweepInterval: getDuration("SESSION_SWEEP_INTERVAL", 5*time.Minute),
		},
		Uploads: UploadConfig{
			MaxDocumentBytes: getInt64("UPLOAD_MAX_BYTES", 8<<20),
			AllowedTypes:     getList("UPLOAD_ALLOWED_TYPES", []string{"image/jpeg", "image/png", "application/pdf"}),
		},
		Pipeline: PipelineConfig{
			AdditionalGuestPhones: getEnv("PIPELINE_GUEST_PHONES", "none"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func getList(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
