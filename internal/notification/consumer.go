package notification

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/Sriram31Mech/EventHubPro-1/config"
)

// ===========================
// 🎯 Activity Consumer
// ===========================

// StartKafkaConsumer reads activity messages off the topic and turns them
// into in-app notifications. Runs until ctx is cancelled.
func StartKafkaConsumer(ctx context.Context, cfg *config.Config, svc Service) {
	if !cfg.KafkaEnabled {
		return
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaTopic,
		GroupID: "eventhub-notifications",
	})

	go func() {
		defer reader.Close()
		log.Println("✅ Kafka consumer started")

		impl, ok := svc.(*service)
		if !ok {
			log.Println("⚠️ consumer requires the default notification service")
			return
		}

		for {
			m, err := reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Printf("⚠️ Kafka read: %v", err)
				continue
			}

			var msg ActivityMessage
			if err := json.Unmarshal(m.Value, &msg); err != nil {
				log.Printf("⚠️ malformed activity message: %v", err)
				continue
			}
			impl.deliver(msg)
		}
	}()
}
