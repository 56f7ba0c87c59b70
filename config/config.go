package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort    string
	Environment    string
	MongoDBConfig  MongoDBConfig
	KafkaConfig    KafkaConfig
	SMTPConfig     SMTPConfig
	LookupConfig   LookupConfig
	TracingConfig  TracingConfig
	JWTSecret      string
	ListFailClosed bool
}

type MongoDBConfig struct {
	DBHost string
	DBPort string
	DBName string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type SMTPConfig struct {
	Host           string
	Port           int
	Sender         string
	Password       string
	AlertRecipient string
}

type LookupConfig struct {
	BaseURL string
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		MongoDBConfig: MongoDBConfig{
			DBHost: os.Getenv("DB_HOST"),
			DBPort: os.Getenv("DB_PORT"),
			DBName: os.Getenv("DB_NAME"),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		SMTPConfig: SMTPConfig{
			Host:           os.Getenv("SMTP_HOST"),
			Sender:         os.Getenv("SMTP_SENDER"),
			Password:       os.Getenv("SMTP_PASSWORD"),
			AlertRecipient: os.Getenv("ALERT_RECIPIENT"),
		},
		LookupConfig: LookupConfig{
			BaseURL: os.Getenv("LOOKUP_BASE_URL"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	if conf.MongoDBConfig.DBName == "" {
		conf.MongoDBConfig.DBName = "iwoot"
	}

	brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	if err == nil {
		conf.KafkaConfig.BrokerPartition = brokerPartition
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err == nil {
		conf.SMTPConfig.Port = smtpPort
	}

	// List calls swallow backend failures into empty results by default so a
	// transient outage never blanks the whole UI. Set LIST_FAIL_CLOSED=true to
	// surface those failures instead.
	failClosed, err := strconv.ParseBool(os.Getenv("LIST_FAIL_CLOSED"))
	if err == nil {
		conf.ListFailClosed = failClosed
	}

	return &conf
}
