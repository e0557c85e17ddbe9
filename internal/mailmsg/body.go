package mailmsg

import (
	"encoding/base64"
	"strings"

	"google.golang.org/api/gmail/v1"
)

// ExtractBodies walks a message's part tree depth-first and concatenates the
// decoded payloads of every text/plain and text/html leaf, in traversal
// order. Other part types (attachments, inline images) are skipped, as is
// any leaf whose payload fails to decode.
func ExtractBodies(payload *gmail.MessagePart) (plainText, htmlText string) {
	var plain, html strings.Builder
	collectBodies(payload, &plain, &html)
	return plain.String(), html.String()
}

func collectBodies(part *gmail.MessagePart, plain, html *strings.Builder) {
	if part == nil {
		return
	}

	if part.Body != nil && part.Body.Data != "" {
		switch part.MimeType {
		case "text/plain":
			plain.WriteString(decodeBase64URL(part.Body.Data))
		case "text/html":
			html.WriteString(decodeBase64URL(part.Body.Data))
		}
	}

	for _, child := range part.Parts {
		collectBodies(child, plain, html)
	}
}

// decodeBase64URL decodes Gmail body data, which is base64url encoded with or
// without padding. Undecodable data contributes nothing.
func decodeBase64URL(data string) string {
	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		decoded, err = base64.RawURLEncoding.DecodeString(data)
		if err != nil {
			return ""
		}
	}
	return string(decoded)
}
