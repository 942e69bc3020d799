package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cesarbruschetta/api-fintech/configs"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/logger"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

type Producer struct {
	producer *kafka.Producer
	topic    string
}

var KafkaProducer *Producer

func NewKafkaProducer(topic string) (*Producer, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":  configs.KAFKA_SERVER,
		"security.protocol":  configs.KAFKA_SECURITY_PROTOCOL,
		"sasl.mechanisms":    configs.KAFKA_SASL_MECHANISM,
		"sasl.username":      configs.KAFKA_SASL_USERNAME,
		"sasl.password":      configs.KAFKA_SASL_PASSWORD,
		"session.timeout.ms": configs.KAFKA_SESSION_TIMEOUT_MS,
		"client.id":          configs.KAFKA_CLIENT_ID,
		"log_level":          0})
	if err != nil {
		return nil, err
	}

	return &Producer{
		producer: p,
		topic:    topic,
	}, nil
}

// PublishLedgerEvent emits one ledger event, keyed by loan id so all
// events of a loan land on the same partition in order.
func (p *Producer) PublishLedgerEvent(ctx context.Context, event models.LedgerEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger event: %w", err)
	}

	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.topic, Partition: kafka.PartitionAny},
		Key:            []byte(event.LoanId),
		Value:          payload,
	}

	retryCount := configs.KAFKA_RETRY_COUNT
	var lastErr error
	for attempt := 0; attempt <= retryCount; attempt++ {
		deliveryChan := make(chan kafka.Event, 1)
		lastErr = p.producer.Produce(msg, deliveryChan)
		if lastErr == nil {
			event := <-deliveryChan
			delivered := event.(*kafka.Message)
			lastErr = delivered.TopicPartition.Error
			if lastErr == nil {
				logger.Info(ctx, "Ledger event delivered to topic: %s, partition: %d, offset: %v",
					*delivered.TopicPartition.Topic, delivered.TopicPartition.Partition, delivered.TopicPartition.Offset)
				return nil
			}
		}
		logger.Error(ctx, "Failed to send ledger event on attempt %d: %v", attempt+1, lastErr)
		// Backoff before retrying
		time.Sleep(time.Second * time.Duration(attempt+1))
	}
	return fmt.Errorf("delivery failed after %d attempts: %w", retryCount+1, lastErr)
}

func (p *Producer) Close() {
	p.producer.Flush(15 * 1000)
	p.producer.Close()
}
