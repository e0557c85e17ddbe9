// Package mailmsg derives immutable email records from raw Gmail API messages.
package mailmsg

import (
	"strings"

	"google.golang.org/api/gmail/v1"
)

// Record is a display-ready view of one Gmail message. It is derived fresh
// from the API payload on every fetch and never mutated afterwards.
type Record struct {
	ID       string
	ThreadID string
	Labels   []string
	Snippet  string

	From       string
	To         string
	Subject    string
	Date       string
	MessageID  string
	InReplyTo  string
	References string

	PlainText string
	HTMLText  string
}

// FromGmail builds a Record from a full-format Gmail message.
func FromGmail(msg *gmail.Message) Record {
	rec := Record{
		ID:       msg.Id,
		ThreadID: msg.ThreadId,
		Labels:   msg.LabelIds,
		Snippet:  msg.Snippet,
	}

	if msg.Payload == nil {
		return rec
	}

	rec.From = findHeader(msg.Payload.Headers, "From")
	rec.To = findHeader(msg.Payload.Headers, "To")
	rec.Subject = findHeader(msg.Payload.Headers, "Subject")
	rec.Date = findHeader(msg.Payload.Headers, "Date")
	rec.MessageID = findHeader(msg.Payload.Headers, "Message-Id")
	rec.InReplyTo = findHeader(msg.Payload.Headers, "In-Reply-To")
	rec.References = findHeader(msg.Payload.Headers, "References")

	plain, html := ExtractBodies(msg.Payload)
	rec.PlainText = strings.TrimSpace(plain)
	rec.HTMLText = strings.TrimSpace(html)

	return rec
}

// findHeader returns the value of the first header matching name,
// case-insensitively. Missing headers yield the empty string.
func findHeader(headers []*gmail.MessagePartHeader, name string) string {
	for _, h := range headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}
