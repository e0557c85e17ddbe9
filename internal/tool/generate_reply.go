package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Dhivakar2005/MailHarvester/internal/format"
	"github.com/Dhivakar2005/MailHarvester/internal/mailmsg"
)

// GenerateReplyRequest names the message to draft a reply for.
type GenerateReplyRequest struct {
	MessageID string `json:"message_id" jsonschema:"message ID to draft a reply for"`
}

// GenerateReplyResponse carries the draft reply text.
type GenerateReplyResponse struct {
	MessageID string `json:"message_id" jsonschema:"message ID the draft answers"`
	Draft     string `json:"draft" jsonschema:"draft reply text, editable before sending"`
}

type draftGenerator interface {
	Generate(ctx context.Context, emailText string) string
}

// NewGenerateReply creates a new GenerateReply tool.
func NewGenerateReply(svc getMessagesSvc, gen draftGenerator) *GenerateReply {
	return &GenerateReply{
		svc: svc,
		gen: gen,
	}
}

// GenerateReply drafts a reply from a message's display text.
type GenerateReply struct {
	svc getMessagesSvc
	gen draftGenerator
}

// GenerateReply fetches the message, reduces it to display text and asks the
// generator for a draft. Generation itself never fails the call; the worst
// case is a placeholder draft explaining what went wrong.
func (t *GenerateReply) GenerateReply(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateReplyRequest,
) (*mcp.CallToolResult, GenerateReplyResponse, error) {
	msg, err := t.svc.GetMessage(ctx, input.MessageID)
	if err != nil {
		return nil, GenerateReplyResponse{}, fmt.Errorf("get message %s failed: %w", input.MessageID, err)
	}

	rec := mailmsg.FromGmail(msg)
	text := format.DisplayText(rec.PlainText, rec.HTMLText, rec.Snippet)

	return nil, GenerateReplyResponse{
		MessageID: rec.ID,
		Draft:     t.gen.Generate(ctx, text),
	}, nil
}
