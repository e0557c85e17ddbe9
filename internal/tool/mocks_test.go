package tool_test

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/gmail/v1"

	"github.com/Dhivakar2005/MailHarvester/internal/tool"
)

type gmailSvcMock struct {
	ListMessagesFunc func(ctx context.Context, Q, pageToken string, maxResults int64) (*gmail.ListMessagesResponse, error)
	GetMessageFunc   func(ctx context.Context, msgID string) (*gmail.Message, error)
	SendMessageFunc  func(ctx context.Context, raw, threadID string) (*gmail.Message, error)
	ModifyLabelsFunc func(ctx context.Context, msgID string, add, remove []string) error
}

func (m *gmailSvcMock) ListMessages(ctx context.Context, Q, pageToken string, maxResults int64) (*gmail.ListMessagesResponse, error) {
	return m.ListMessagesFunc(ctx, Q, pageToken, maxResults)
}

func (m *gmailSvcMock) GetMessage(ctx context.Context, msgID string) (*gmail.Message, error) {
	return m.GetMessageFunc(ctx, msgID)
}

func (m *gmailSvcMock) SendMessage(ctx context.Context, raw, threadID string) (*gmail.Message, error) {
	return m.SendMessageFunc(ctx, raw, threadID)
}

func (m *gmailSvcMock) ModifyLabels(ctx context.Context, msgID string, add, remove []string) error {
	return m.ModifyLabelsFunc(ctx, msgID, add, remove)
}

type generatorMock struct {
	GenerateFunc func(ctx context.Context, emailText string) string
}

func (m *generatorMock) Generate(ctx context.Context, emailText string) string {
	return m.GenerateFunc(ctx, emailText)
}

func newTestSession(t *testing.T, svc *gmailSvcMock, gen *generatorMock) (context.Context, *mcp.ClientSession) {
	t.Helper()

	if gen == nil {
		gen = &generatorMock{}
	}

	server := tool.NewServer(svc, gen)
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	ctx := context.Background()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { clientSession.Close() })

	return ctx, clientSession
}
