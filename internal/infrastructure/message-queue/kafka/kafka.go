package kafka

import (
	"context"

	"github.com/iwootapp/iwoot/config"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// CreateKafkaProducer dials the record-change topic. Event publishing is
// advisory, so a missing or unreachable broker yields a nil producer and
// services skip publishing instead of failing startup.
func CreateKafkaProducer(config *config.Config) *kafka.Conn {
	if config.KafkaConfig.BrokerAddress == "" {
		return nil
	}

	conn, err := kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		log.Warn().Err(err).Str("component", "CreateKafkaProducer").Msg("record-change events disabled")
		return nil
	}

	return conn
}
