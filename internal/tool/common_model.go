// Package tool exposes the mail assistant's operations as MCP tools.
package tool

import (
	"strings"

	"github.com/Dhivakar2005/MailHarvester/internal/mailmsg"
)

// EmailAddress represents an email address with optional display name.
type EmailAddress struct {
	Name  string `json:"name,omitempty" jsonschema:"the display name"`
	Email string `json:"email" jsonschema:"the email address"`
}

// MessageSummary contains essential message metadata.
type MessageSummary struct {
	ID       string         `json:"id" jsonschema:"message ID"`
	ThreadID string         `json:"thread_id" jsonschema:"thread ID"`
	Date     string         `json:"date" jsonschema:"raw Date header"`
	From     EmailAddress   `json:"from" jsonschema:"sender information"`
	To       []EmailAddress `json:"to,omitempty" jsonschema:"recipients"`
	Subject  string         `json:"subject" jsonschema:"email subject"`
	Snippet  string         `json:"snippet" jsonschema:"message preview"`
	Labels   []string       `json:"labels,omitempty" jsonschema:"label IDs"`
}

// FetchFailure reports one message that could not be loaded. Failures never
// abort a batch; the remaining messages are still returned.
type FetchFailure struct {
	ID    string `json:"id" jsonschema:"message ID that failed to load"`
	Error string `json:"error" jsonschema:"failure description"`
}

func summaryFromRecord(rec mailmsg.Record) MessageSummary {
	return MessageSummary{
		ID:       rec.ID,
		ThreadID: rec.ThreadID,
		Date:     rec.Date,
		From:     parseEmailAddress(rec.From),
		To:       parseEmailAddressList(rec.To),
		Subject:  rec.Subject,
		Snippet:  rec.Snippet,
		Labels:   rec.Labels,
	}
}

func parseEmailAddress(from string) EmailAddress {
	addr := EmailAddress{}

	if idx := strings.Index(from, "<"); idx != -1 {
		addr.Name = strings.TrimSpace(from[:idx])
		if endIdx := strings.Index(from[idx:], ">"); endIdx != -1 {
			addr.Email = strings.TrimSpace(from[idx+1 : idx+endIdx])
		}
	} else {
		addr.Email = strings.TrimSpace(from)
	}

	addr.Name = strings.Trim(addr.Name, "\"")

	return addr
}

func parseEmailAddressList(addresses string) []EmailAddress {
	if addresses == "" {
		return nil
	}

	parts := strings.Split(addresses, ",")
	result := make([]EmailAddress, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, parseEmailAddress(trimmed))
		}
	}

	return result
}
