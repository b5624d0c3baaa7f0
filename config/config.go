package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	DatabaseDSN string
	BaseURL     string

	// JWT signing secret, required. Never logged.
	AccessSecret string

	// "smtp" sends verification mail directly, "kafka" publishes an event
	// for an out-of-process dispatcher.
	MailProvider string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
	MailFromName string
	MailSubject  string

	KafkaBroker   string
	KafkaTopic    string
	KafkaGroupID  string
	KafkaUsername string
	KafkaPassword string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	cfg := Config{
		ServerPort:   os.Getenv("SERVER_PORT"),
		DatabaseDSN:  os.Getenv("DATABASE_DSN"),
		BaseURL:      os.Getenv("BASE_URL"),
		AccessSecret: os.Getenv("ACCESS_SECRET"),

		MailProvider: os.Getenv("MAIL_PROVIDER"),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     os.Getenv("SMTP_PORT"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     os.Getenv("MAIL_FROM"),
		MailFromName: os.Getenv("MAIL_FROM_NAME"),
		MailSubject:  os.Getenv("MAIL_SUBJECT"),

		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    os.Getenv("KAFKA_TOPIC"),
		KafkaGroupID:  os.Getenv("KAFKA_GROUP_ID"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),
	}

	// fail fast: without a signing secret no token can ever be issued,
	// and an empty secret must not become a silent insecure default
	if cfg.AccessSecret == "" {
		log.Fatal("ACCESS_SECRET is not set")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN is not set")
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = ":3000"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "*"
	}
	if cfg.MailProvider == "" {
		cfg.MailProvider = "smtp"
	}
	if cfg.MailSubject == "" {
		cfg.MailSubject = "Verify your email"
	}

	return cfg
}
