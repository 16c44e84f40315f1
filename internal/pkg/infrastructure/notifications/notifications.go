package notifications

import (
	"context"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

//go:generate moq -rm -out notifier_mock.go . Notifier

// Notifier sends a short out of band text message to a preconfigured
// recipient. It is a plain passthrough to the provider.
type Notifier interface {
	Send(ctx context.Context, body string) error
}

type Config struct {
	AccountSID string
	AuthToken  string
	From       string
	To         string
}

func NewConfig(accountSID, authToken, from, to string) Config {
	return Config{
		AccountSID: accountSID,
		AuthToken:  authToken,
		From:       from,
		To:         to,
	}
}

type notifier struct {
	client *twilio.RestClient
	from   string
	to     string
}

func New(config Config) Notifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: config.AccountSID,
		Password: config.AuthToken,
	})

	return &notifier{
		client: client,
		from:   config.From,
		to:     config.To,
	}
}

func (n *notifier) Send(ctx context.Context, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetFrom(n.from)
	params.SetTo(n.to)
	params.SetBody(body)

	_, err := n.client.Api.CreateMessage(params)
	if err != nil {
		logging.GetFromContext(ctx).Error("failed to send notification", "err", err.Error())
		return err
	}

	return nil
}
