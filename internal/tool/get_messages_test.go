package tool_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/gmail/v1"

	"github.com/Dhivakar2005/MailHarvester/internal/tool"
)

func newGetMessagesGmailSvc() *gmailSvcMock {
	return &gmailSvcMock{
		GetMessageFunc: func(_ context.Context, msgID string) (*gmail.Message, error) {
			switch msgID {
			case "error-msg":
				return nil, fmt.Errorf("message not found: %s", msgID)
			case "html-only":
				return &gmail.Message{
					Id:       msgID,
					ThreadId: "t-" + msgID,
					Snippet:  "test snippet " + msgID,
					Payload: &gmail.MessagePart{
						MimeType: "text/html",
						Headers: []*gmail.MessagePartHeader{
							{Name: "From", Value: "Sender <sender@example.com>"},
							{Name: "Subject", Value: "HTML only"},
						},
						Body: &gmail.MessagePartBody{
							Data: "PHA-SGVsbG8sIDxiPkhUTUw8L2I-LjwvcD4=", // "<p>Hello, <b>HTML</b>.</p>"
						},
					},
				}, nil
			}
			return &gmail.Message{
				Id:       msgID,
				ThreadId: "t-" + msgID,
				Snippet:  "test snippet " + msgID,
				Payload: &gmail.MessagePart{
					MimeType: "multipart/alternative",
					Headers: []*gmail.MessagePartHeader{
						{Name: "From", Value: fmt.Sprintf("Sender <%s@example.com>", msgID)},
						{Name: "To", Value: fmt.Sprintf("Receiver <receiver-%s@example.com>", msgID)},
						{Name: "Subject", Value: "Test subject " + msgID},
						{Name: "Date", Value: "Mon, 01 Jan 2024 10:00:00 +0000"},
					},
					Parts: []*gmail.MessagePart{
						{
							MimeType: "text/plain",
							Body: &gmail.MessagePartBody{
								Data: "SGVsbG8sIHBsYWluLg==", // "Hello, plain."
							},
						},
						{
							MimeType: "text/html",
							Body: &gmail.MessagePartBody{
								Data: "PHA-SGVsbG8sIDxiPkhUTUw8L2I-LjwvcD4=", // "<p>Hello, <b>HTML</b>.</p>"
							},
						},
					},
				},
			}, nil
		},
	}
}

func TestGetMessages(t *testing.T) {
	cases := []struct {
		name     string
		req      tool.GetMessagesRequest
		expected tool.GetMessagesResponse
	}{
		{
			name: "plain body preferred for display",
			req: tool.GetMessagesRequest{
				MessageIDs: []string{"msg-001"},
			},
			expected: tool.GetMessagesResponse{
				Messages: []tool.MessageContent{
					{
						Summary: tool.MessageSummary{
							ID:       "msg-001",
							ThreadID: "t-msg-001",
							Date:     "Mon, 01 Jan 2024 10:00:00 +0000",
							From:     tool.EmailAddress{Name: "Sender", Email: "msg-001@example.com"},
							To:       []tool.EmailAddress{{Name: "Receiver", Email: "receiver-msg-001@example.com"}},
							Subject:  "Test subject msg-001",
							Snippet:  "test snippet msg-001",
						},
						PlainText:   "Hello, plain.",
						HTMLText:    "<p>Hello, <b>HTML</b>.</p>",
						DisplayText: "Hello, plain.",
					},
				},
			},
		},
		{
			name: "html stripped when no plain body",
			req: tool.GetMessagesRequest{
				MessageIDs: []string{"html-only"},
			},
			expected: tool.GetMessagesResponse{
				Messages: []tool.MessageContent{
					{
						Summary: tool.MessageSummary{
							ID:       "html-only",
							ThreadID: "t-html-only",
							From:     tool.EmailAddress{Name: "Sender", Email: "sender@example.com"},
							Subject:  "HTML only",
							Snippet:  "test snippet html-only",
						},
						HTMLText:    "<p>Hello, <b>HTML</b>.</p>",
						DisplayText: "Hello, HTML.",
					},
				},
			},
		},
		{
			name: "failed message reported while the batch continues",
			req: tool.GetMessagesRequest{
				MessageIDs: []string{"msg-001", "error-msg", "msg-003"},
			},
			expected: tool.GetMessagesResponse{
				Messages: []tool.MessageContent{
					{
						Summary: tool.MessageSummary{
							ID:       "msg-001",
							ThreadID: "t-msg-001",
							Date:     "Mon, 01 Jan 2024 10:00:00 +0000",
							From:     tool.EmailAddress{Name: "Sender", Email: "msg-001@example.com"},
							To:       []tool.EmailAddress{{Name: "Receiver", Email: "receiver-msg-001@example.com"}},
							Subject:  "Test subject msg-001",
							Snippet:  "test snippet msg-001",
						},
						PlainText:   "Hello, plain.",
						HTMLText:    "<p>Hello, <b>HTML</b>.</p>",
						DisplayText: "Hello, plain.",
					},
					{
						Summary: tool.MessageSummary{
							ID:       "msg-003",
							ThreadID: "t-msg-003",
							Date:     "Mon, 01 Jan 2024 10:00:00 +0000",
							From:     tool.EmailAddress{Name: "Sender", Email: "msg-003@example.com"},
							To:       []tool.EmailAddress{{Name: "Receiver", Email: "receiver-msg-003@example.com"}},
							Subject:  "Test subject msg-003",
							Snippet:  "test snippet msg-003",
						},
						PlainText:   "Hello, plain.",
						HTMLText:    "<p>Hello, <b>HTML</b>.</p>",
						DisplayText: "Hello, plain.",
					},
				},
				Failures: []tool.FetchFailure{
					{ID: "error-msg", Error: "message not found: error-msg"},
				},
			},
		},
	}

	ctx, clientSession := newTestSession(t, newGetMessagesGmailSvc(), nil)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := clientSession.CallTool(ctx, &mcp.CallToolParams{
				Name:      "get_messages",
				Arguments: tc.req,
			})
			require.NoError(t, err)
			require.NotNil(t, result)
			require.NotEmpty(t, result.Content)
			require.False(t, result.IsError, "Result should not indicate error")

			var response tool.GetMessagesResponse
			require.NoError(t,
				json.Unmarshal(
					[]byte(result.Content[0].(*mcp.TextContent).Text),
					&response,
				),
			)
			assert.Equal(t, tc.expected, response)
		})
	}
}
