package tool

import (
	"context"
	"fmt"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"

	"github.com/Dhivakar2005/MailHarvester/internal/compose"
	"github.com/Dhivakar2005/MailHarvester/internal/mailmsg"
)

const labelUnread = "UNREAD"

// SendReplyRequest names the message being answered and the reply text.
type SendReplyRequest struct {
	MessageID string `json:"message_id" jsonschema:"message ID being replied to"`
	Body      string `json:"body" jsonschema:"reply body text, sent verbatim"`
}

// SendReplyResponse reports the sent reply.
type SendReplyResponse struct {
	ID       string `json:"id" jsonschema:"ID Gmail assigned to the sent reply"`
	ThreadID string `json:"thread_id,omitempty" jsonschema:"conversation the reply joined"`
	To       string `json:"to" jsonschema:"resolved recipient address"`
	Subject  string `json:"subject" jsonschema:"subject of the sent reply"`
}

type sendMessageSvc interface {
	GetMessage(ctx context.Context, msgID string) (*gmail.Message, error)
	SendMessage(ctx context.Context, raw, threadID string) (*gmail.Message, error)
	ModifyLabels(ctx context.Context, msgID string, add, remove []string) error
}

// NewSendReply creates a new SendReply tool.
func NewSendReply(svc sendMessageSvc) *SendReply {
	return &SendReply{
		svc: svc,
	}
}

// SendReply composes and sends a threaded reply to an existing message.
type SendReply struct {
	svc sendMessageSvc
}

// SendReply fetches the original message, composes a threaded reply and sends
// it. After a successful send the original's UNREAD label is removed on a
// best-effort basis; a label failure is logged, never propagated.
func (t *SendReply) SendReply(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SendReplyRequest,
) (*mcp.CallToolResult, SendReplyResponse, error) {
	msg, err := t.svc.GetMessage(ctx, input.MessageID)
	if err != nil {
		return nil, SendReplyResponse{}, fmt.Errorf("get message %s failed: %w", input.MessageID, err)
	}

	orig := mailmsg.FromGmail(msg)

	out, err := compose.Reply(orig, input.Body)
	if err != nil {
		return nil, SendReplyResponse{}, fmt.Errorf("compose.Reply failed: %w", err)
	}

	sent, err := t.svc.SendMessage(ctx, out.Encode(), out.ThreadID)
	if err != nil {
		return nil, SendReplyResponse{}, fmt.Errorf("svc.SendMessage failed: %w", err)
	}

	if err := t.svc.ModifyLabels(ctx, orig.ID, nil, []string{labelUnread}); err != nil {
		log.Println(fmt.Errorf("remove %s label on %s failed: %w", labelUnread, orig.ID, err))
	}

	return nil, SendReplyResponse{
		ID:       sent.Id,
		ThreadID: sent.ThreadId,
		To:       out.To,
		Subject:  out.Subject,
	}, nil
}
