package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"

	"github.com/Dhivakar2005/MailHarvester/internal/mailmsg"
)

// SearchMessagesRequest specifies the mailbox query to run.
type SearchMessagesRequest struct {
	Query      string `json:"query" jsonschema:"the Gmail search query"`
	MaxResults int64  `json:"max_results,omitempty" jsonschema:"max results per page"`
	PageToken  string `json:"page_token,omitempty" jsonschema:"token for pagination"`
}

// SearchMessagesResponse contains matching messages ordered newest first.
type SearchMessagesResponse struct {
	Messages      []MessageSummary `json:"messages" jsonschema:"array of message summaries, newest first"`
	Failures      []FetchFailure   `json:"failures,omitempty" jsonschema:"messages that matched but failed to load"`
	NextPageToken string           `json:"next_page_token,omitempty" jsonschema:"token for next page"`
	TotalResults  int              `json:"total_results" jsonschema:"number of messages returned"`
}

type searchMessagesSvc interface {
	ListMessages(ctx context.Context, Q, pageToken string, maxResults int64) (*gmail.ListMessagesResponse, error)
	GetMessage(ctx context.Context, msgID string) (*gmail.Message, error)
}

// NewSearchMessages creates a new SearchMessages tool.
func NewSearchMessages(svc searchMessagesSvc) *SearchMessages {
	return &SearchMessages{
		svc: svc,
	}
}

type SearchMessages struct {
	svc searchMessagesSvc
}

// SearchMessages lists matching message IDs, loads each one sequentially and
// returns summaries ordered by send time descending. A failed per-message
// load is reported alongside the surviving results, not escalated.
func (t *SearchMessages) SearchMessages(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchMessagesRequest,
) (*mcp.CallToolResult, SearchMessagesResponse, error) {
	input.MaxResults = normalizeMaxResults(input.MaxResults)

	result, err := t.svc.ListMessages(ctx, input.Query, input.PageToken, input.MaxResults)
	if err != nil {
		return nil, SearchMessagesResponse{}, fmt.Errorf("svc.ListMessages failed: %w", err)
	}

	records := make([]mailmsg.Record, 0, len(result.Messages))
	var failures []FetchFailure

	for _, m := range result.Messages {
		msg, err := t.svc.GetMessage(ctx, m.Id)
		if err != nil {
			failures = append(failures, FetchFailure{ID: m.Id, Error: err.Error()})
			continue
		}

		records = append(records, mailmsg.FromGmail(msg))
	}

	mailmsg.SortByDate(records)

	messages := make([]MessageSummary, 0, len(records))
	for _, rec := range records {
		messages = append(messages, summaryFromRecord(rec))
	}

	return nil, SearchMessagesResponse{
		Messages:      messages,
		Failures:      failures,
		NextPageToken: result.NextPageToken,
		TotalResults:  len(messages),
	}, nil
}

func normalizeMaxResults(maxResults int64) int64 {
	if maxResults == 0 {
		return 10
	}
	if maxResults > 50 {
		return 50
	}
	return maxResults
}
