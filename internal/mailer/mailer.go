package mailer

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	intconfig "rescuerehab/internal/config"
)

// Message is one outbound email. HTML is required; Text is an optional plain part.
type Message struct {
	To      string
	ToName  string
	Subject string
	HTML    string
	Text    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Sender identifies the From header shared by every transport.
type Sender struct {
	Email string
	Name  string
}

// New picks the transport named by EMAIL_PROVIDER.
func New(ctx context.Context, env intconfig.Env) (Mailer, error) {
	from := Sender{Email: env.EmailFrom, Name: env.EmailFromName}
	switch strings.ToLower(env.EmailProvider) {
	case "ses":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(env.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("load aws config for ses: %w", err)
		}
		return SES{Client: sesv2.NewFromConfig(awsCfg), From: from}, nil
	case "brevo":
		if env.BrevoAPIKey == "" {
			return nil, fmt.Errorf("BREVO_API_KEY is required for EMAIL_PROVIDER=brevo")
		}
		return Brevo{APIKey: env.BrevoAPIKey, From: from}, nil
	case "", "log":
		return Log{From: from}, nil
	default:
		return nil, fmt.Errorf("unknown EMAIL_PROVIDER %q", env.EmailProvider)
	}
}

func (s Sender) header() string {
	if s.Name == "" {
		return s.Email
	}
	return fmt.Sprintf("%s <%s>", s.Name, s.Email)
}
