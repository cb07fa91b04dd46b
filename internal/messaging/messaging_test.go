package messaging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/kgnguhan/agentic-chaser/internal/clients"
	"github.com/kgnguhan/agentic-chaser/internal/communications"
)

type stubClients struct {
	clients.System
	client *clients.Client
}

func (s *stubClients) Find(context.Context, string) (*clients.Client, error) {
	if s.client == nil {
		return nil, clients.ErrNotFound
	}
	return s.client, nil
}

func TestChannelFor(t *testing.T) {
	tests := []struct {
		name      string
		client    *clients.Client
		direction string
		expected  string
	}{
		{
			"client preference is honored",
			&clients.Client{ID: "client-1", CommunicationPreference: clients.ChannelSMS},
			communications.DirectionAdvisorToClient,
			clients.ChannelSMS,
		},
		{
			"provider correspondence is always email",
			&clients.Client{ID: "client-1", CommunicationPreference: clients.ChannelWhatsApp},
			communications.DirectionAdvisorToProvider,
			clients.ChannelEmail,
		},
		{
			"missing client defers to the log default",
			nil,
			communications.DirectionAdvisorToClient,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &service{
				clients: &stubClients{client: tt.client},
				logger:  slog.Default(),
			}

			if got := svc.channelFor(context.Background(), "client-1", tt.direction); got != tt.expected {
				t.Errorf("channel: got %q, want %q", got, tt.expected)
			}
		})
	}
}
