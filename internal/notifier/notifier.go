package notifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	intconfig "rescuerehab/internal/config"
)

// DonationEvent is published once per newly recorded donation.
type DonationEvent struct {
	DonationID int64     `json:"donationId"`
	PaymentID  string    `json:"paymentId"`
	OrderID    string    `json:"orderId"`
	DonorName  string    `json:"donorName"`
	DonorEmail string    `json:"donorEmail,omitempty"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Notifier interface {
	Notify(ctx context.Context, event DonationEvent) error
	Close() error
}

// Noop is used when DONATION_EVENTS_SINK=none.
type Noop struct{}

func (Noop) Notify(context.Context, DonationEvent) error { return nil }
func (Noop) Close() error { return nil }

// New builds the sink selected by DONATION_EVENTS_SINK.
func New(ctx context.Context, env intconfig.Env) (Notifier, error) {
	switch strings.ToLower(env.EventsSink) {
	case "", "none":
		return Noop{}, nil
	case "kafka":
		return NewKafkaNotifier(env.KafkaBrokers, env.KafkaTopic, env.KafkaUsername, env.KafkaPassword)
	case "sqs":
		if env.SQSQueueURL == "" {
			return nil, fmt.Errorf("SQS_QUEUE_URL is required for DONATION_EVENTS_SINK=sqs")
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(env.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("load aws config for sqs: %w", err)
		}
		return &SQSNotifier{Client: sqs.NewFromConfig(awsCfg), QueueURL: env.SQSQueueURL}, nil
	default:
		return nil, fmt.Errorf("unknown DONATION_EVENTS_SINK %q", env.EventsSink)
	}
}
