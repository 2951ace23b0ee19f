package notifier

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/scram"

	"rescuerehab/internal/utils"
)

// MessageWriter is the part of *kafka.Writer the notifier needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaNotifier struct {
	writer MessageWriter
}

func (kn *KafkaNotifier) Notify(ctx context.Context, event DonationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal donation event %d: %w", event.DonationID, err)
	}
	return kn.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.DonationID, 10)),
		Value: data,
	})
}

func (kn *KafkaNotifier) Close() error {
	return kn.writer.Close()
}

// NewKafkaNotifier uses SCRAM-SHA-256 over TLS when credentials are set.
func NewKafkaNotifier(brokers []string, topic, username, password string) (*KafkaNotifier, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("KAFKA_BROKERS is required for DONATION_EVENTS_SINK=kafka")
	}
	utils.Log.Info().Strs("brokers", brokers).Str("topic", topic).Msg("kafka donation notifier")

	dialer := kafka.DefaultDialer
	if username != "" || password != "" {
		mechanism, err := scram.Mechanism(scram.SHA256, username, password)
		if err != nil {
			return nil, err
		}
		dialer = &kafka.Dialer{
			SASLMechanism: mechanism,
			TLS:           &tls.Config{MinVersion: tls.VersionTLS12},
		}
	}
	return &KafkaNotifier{writer: kafka.NewWriter(kafka.WriterConfig{
		Brokers:   brokers,
		Topic:     topic,
		Dialer:    dialer,
		BatchSize: 1,
	})}, nil
}
