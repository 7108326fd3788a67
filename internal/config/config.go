package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Session SessionConfig
	Relay   RelayConfig
	Mpesa   MpesaConfig
	Airtel  AirtelConfig
	Invoice InvoiceConfig
}

type ServerConfig struct {
	Port string
	Host string
	Env  string
}

type SessionConfig struct {
	Secret string
}

// RelayConfig points at the hosted form relay that receives completed
// orders
type RelayConfig struct {
	Endpoint string
	ReplyTo  string
}

// MpesaConfig tunes the simulated M-Pesa gateway
type MpesaConfig struct {
	BusinessShortCode string
	PushDelay         time.Duration
	SuccessRate       float64
}

// AirtelConfig tunes the simulated Airtel Money gateway
type AirtelConfig struct {
	ManualPayNumber string
	PushDelay       time.Duration
	SuccessRate     float64
}

// InvoiceConfig controls where generated invoice documents are written
type InvoiceConfig struct {
	OutputDir string
}

func Load() (*Config, error) {
	// Load .env files if they exist (try .env.local first, then .env)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "localhost"),
			Env:  getEnv("ENV", "development"),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
		},
		Relay: RelayConfig{
			Endpoint: getEnv("RELAY_ENDPOINT", "https://formspree.io/f/xgvlodzv"),
			ReplyTo:  getEnv("RELAY_REPLY_TO", "info@acacialounge.co.ke"),
		},
		Mpesa: MpesaConfig{
			BusinessShortCode: getEnv("MPESA_SHORTCODE", "174379"),
			PushDelay:         getEnvAsDuration("MPESA_PUSH_DELAY", 2*time.Second),
			SuccessRate:       getEnvAsFloat("MPESA_SUCCESS_RATE", 0.8),
		},
		Airtel: AirtelConfig{
			ManualPayNumber: getEnv("AIRTEL_PAY_NUMBER", "0721555163"),
			PushDelay:       getEnvAsDuration("AIRTEL_PUSH_DELAY", 2*time.Second),
			SuccessRate:     getEnvAsFloat("AIRTEL_SUCCESS_RATE", 0.8),
		},
		Invoice: InvoiceConfig{
			OutputDir: getEnv("INVOICE_DIR", "invoices"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
