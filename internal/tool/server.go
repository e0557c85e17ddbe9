package tool

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type gmailSvc interface {
	searchMessagesSvc
	getMessagesSvc
	sendMessageSvc
}

// NewServer creates an MCP server with the mail assistant tools.
func NewServer(svc gmailSvc, gen draftGenerator) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "mail-harvester", Version: "v1.0.0"}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_messages",
		Description: "Search Gmail messages using Gmail search syntax, newest first",
	}, NewSearchMessages(svc).SearchMessages)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_messages",
		Description: "Get full message content for specified message IDs",
	}, NewGetMessages(svc).GetMessages)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_reply",
		Description: "Draft an AI-written reply to the specified message",
	}, NewGenerateReply(svc, gen).GenerateReply)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "send_reply",
		Description: "Send a reply to the specified message, threaded into its conversation",
	}, NewSendReply(svc).SendReply)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "send_message",
		Description: "Compose and send a new email message",
	}, NewSendMessage(svc).SendMessage)

	return server
}
