package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"

	"github.com/Dhivakar2005/MailHarvester/internal/format"
	"github.com/Dhivakar2005/MailHarvester/internal/mailmsg"
)

// GetMessagesRequest contains message IDs to retrieve.
type GetMessagesRequest struct {
	MessageIDs []string `json:"message_ids" jsonschema:"array of message IDs to retrieve"`
}

// GetMessagesResponse contains full message contents.
type GetMessagesResponse struct {
	Messages []MessageContent `json:"messages" jsonschema:"array of full message contents"`
	Failures []FetchFailure   `json:"failures,omitempty" jsonschema:"messages that failed to load"`
}

// MessageContent contains complete message data with decoded bodies.
type MessageContent struct {
	Summary     MessageSummary `json:"summary" jsonschema:"summary"`
	PlainText   string         `json:"plain_text,omitempty" jsonschema:"decoded text/plain body"`
	HTMLText    string         `json:"html_text,omitempty" jsonschema:"decoded text/html body"`
	DisplayText string         `json:"display_text" jsonschema:"best-effort readable body"`
}

type getMessagesSvc interface {
	GetMessage(ctx context.Context, msgID string) (*gmail.Message, error)
}

// NewGetMessages creates a new GetMessages tool.
func NewGetMessages(svc getMessagesSvc) *GetMessages {
	return &GetMessages{
		svc: svc,
	}
}

// GetMessages retrieves full message content with decoded bodies.
type GetMessages struct {
	svc getMessagesSvc
}

// GetMessages retrieves complete messages by their IDs, one at a time. A
// message that fails to load is reported and the rest of the batch proceeds.
func (t *GetMessages) GetMessages(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetMessagesRequest,
) (*mcp.CallToolResult, GetMessagesResponse, error) {
	messages := make([]MessageContent, 0, len(input.MessageIDs))
	var failures []FetchFailure

	for _, msgID := range input.MessageIDs {
		msg, err := t.svc.GetMessage(ctx, msgID)
		if err != nil {
			failures = append(failures, FetchFailure{ID: msgID, Error: err.Error()})
			continue
		}

		rec := mailmsg.FromGmail(msg)
		messages = append(messages, MessageContent{
			Summary:     summaryFromRecord(rec),
			PlainText:   rec.PlainText,
			HTMLText:    rec.HTMLText,
			DisplayText: format.DisplayText(rec.PlainText, rec.HTMLText, rec.Snippet),
		})
	}

	return nil, GetMessagesResponse{
		Messages: messages,
		Failures: failures,
	}, nil
}
