package utils

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Sriram31Mech/EventHubPro-1/config"
)

// ===========================
// 🎯 Kafka Producer
// ===========================

var kafkaWriter *kafka.Writer

// InitKafka sets up the activity topic writer. Skipped entirely when
// KAFKA_ENABLED is false; publishers fall back to direct delivery.
func InitKafka(cfg *config.Config) {
	if !cfg.KafkaEnabled {
		log.Println("⚠️ Kafka disabled, activity events delivered in-process")
		return
	}

	kafkaWriter = &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
	}
	log.Println("✅ Kafka producer ready")
}

// KafkaEnabled reports whether the producer was initialised.
func KafkaEnabled() bool {
	return kafkaWriter != nil
}

// PublishJSON marshals payload and writes it to the activity topic.
func PublishJSON(ctx context.Context, key string, payload interface{}) error {
	if kafkaWriter == nil {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return kafkaWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: data,
	})
}

// CloseKafka flushes and closes the producer.
func CloseKafka() {
	if kafkaWriter != nil {
		if err := kafkaWriter.Close(); err != nil {
			log.Printf("⚠️ Kafka close: %v", err)
		}
	}
}
