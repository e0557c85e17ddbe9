// Package compose builds outgoing RFC 5322 messages, including replies that
// thread correctly into an existing Gmail conversation.
package compose

import (
	"encoding/base64"
	"fmt"
	"net/mail"
	"strings"

	"github.com/Dhivakar2005/MailHarvester/internal/mailmsg"
)

// AddressParseError reports that the original sender address could not be
// reduced to a bare recipient. Sending to an unparseable recipient is
// unrecoverable downstream, so this is surfaced instead of degraded.
type AddressParseError struct {
	Raw string
	Err error
}

func (e *AddressParseError) Error() string {
	return fmt.Sprintf("cannot parse sender address %q: %v", e.Raw, e.Err)
}

func (e *AddressParseError) Unwrap() error { return e.Err }

// Outgoing is a send-ready message. From is always the authenticated user,
// which the Gmail API spells "me".
type Outgoing struct {
	To      string
	Subject string
	Body    string

	InReplyTo  string
	References string
	ThreadID   string
}

// Reply builds the message that answers orig with the given body. The
// recipient is the bare address of the original sender; the subject gains a
// "Re: " prefix unless it already carries one; In-Reply-To and References are
// chained from the original's Message-Id so conforming clients thread the
// reply, and the thread ID is carried as a Gmail grouping hint.
func Reply(orig mailmsg.Record, body string) (Outgoing, error) {
	addr, err := mail.ParseAddress(orig.From)
	if err != nil {
		return Outgoing{}, &AddressParseError{Raw: orig.From, Err: err}
	}

	out := Outgoing{
		To:       addr.Address,
		Subject:  replySubject(orig.Subject),
		Body:     body,
		ThreadID: orig.ThreadID,
	}

	// No Message-Id on the original means there is nothing to chain;
	// fabricating threading headers would be worse than omitting them.
	if orig.MessageID != "" {
		out.InReplyTo = orig.MessageID
		if orig.References != "" {
			out.References = orig.References + " " + orig.MessageID
		} else {
			out.References = orig.MessageID
		}
	}

	return out, nil
}

// New builds a fresh, unthreaded message.
func New(to, subject, body string) Outgoing {
	return Outgoing{
		To:      to,
		Subject: subject,
		Body:    body,
	}
}

func replySubject(subject string) string {
	if strings.HasPrefix(strings.ToLower(subject), "re:") {
		return subject
	}
	return "Re: " + subject
}

// Encode serializes the message as a single text/plain RFC 5322 message and
// returns it in the base64url envelope the Gmail send API requires.
func (o Outgoing) Encode() string {
	var msg strings.Builder

	msg.WriteString("From: me\r\n")
	msg.WriteString("To: " + o.To + "\r\n")
	msg.WriteString("Subject: " + o.Subject + "\r\n")
	if o.InReplyTo != "" {
		msg.WriteString("In-Reply-To: " + o.InReplyTo + "\r\n")
	}
	if o.References != "" {
		msg.WriteString("References: " + o.References + "\r\n")
	}
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(o.Body)

	return base64.URLEncoding.EncodeToString([]byte(msg.String()))
}
