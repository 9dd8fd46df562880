package firebase

import (
	"context"

	"firebase.google.com/go/v4/messaging"

	"altanzam/pkg/logger"
)

// FCM accepts at most this many tokens per multicast.
const multicastLimit = 500

type MessagingClient struct {
	client *messaging.Client
}

func NewMessagingClient(client *messaging.Client) *MessagingClient {
	return &MessagingClient{
		client: client,
	}
}

// SendData sends a data-only message to every token, batching as needed, and
// returns the tokens FCM reported as unregistered.
func (m *MessagingClient) SendData(ctx context.Context, tokens []string, data map[string]string) ([]string, error) {
	var unregistered []string

	for start := 0; start < len(tokens); start += multicastLimit {
		end := start + multicastLimit
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := tokens[start:end]

		resp, err := m.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: batch,
			Data:   data,
			Android: &messaging.AndroidConfig{
				Priority: "high",
			},
		})
		if err != nil {
			return unregistered, err
		}

		for i, r := range resp.Responses {
			if r.Success {
				continue
			}
			if messaging.IsUnregistered(r.Error) {
				unregistered = append(unregistered, batch[i])
				continue
			}
			logger.Warn("Push to token %d of batch failed: %v", i, r.Error)
		}
	}

	return unregistered, nil
}
