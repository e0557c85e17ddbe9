package tool

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Dhivakar2005/MailHarvester/internal/compose"
)

// SendMessageRequest describes a new message to compose and send.
type SendMessageRequest struct {
	To      string `json:"to" jsonschema:"recipient address"`
	Subject string `json:"subject" jsonschema:"message subject"`
	Body    string `json:"body" jsonschema:"message body text"`
}

// SendMessageResponse reports the sent message.
type SendMessageResponse struct {
	ID       string `json:"id" jsonschema:"ID Gmail assigned to the sent message"`
	ThreadID string `json:"thread_id,omitempty" jsonschema:"thread the message started"`
}

// NewSendMessage creates a new SendMessage tool.
func NewSendMessage(svc sendMessageSvc) *SendMessage {
	return &SendMessage{
		svc: svc,
	}
}

// SendMessage composes and sends a fresh, unthreaded message.
type SendMessage struct {
	svc sendMessageSvc
}

// SendMessage builds a new message from the given fields and sends it.
func (t *SendMessage) SendMessage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SendMessageRequest,
) (*mcp.CallToolResult, SendMessageResponse, error) {
	if strings.TrimSpace(input.To) == "" {
		return nil, SendMessageResponse{}, errors.New("recipient must not be empty")
	}

	out := compose.New(input.To, input.Subject, input.Body)

	sent, err := t.svc.SendMessage(ctx, out.Encode(), "")
	if err != nil {
		return nil, SendMessageResponse{}, fmt.Errorf("svc.SendMessage failed: %w", err)
	}

	return nil, SendMessageResponse{
		ID:       sent.Id,
		ThreadID: sent.ThreadId,
	}, nil
}
