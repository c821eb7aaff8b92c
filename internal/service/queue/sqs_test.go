package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/property-docs-api/internal/config"
	"github.com/kingrain94/property-docs-api/internal/domain"
)

type mockSQSClient struct {
	mock.Mock
}

func (m *mockSQSClient) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqs.SendMessageOutput), args.Error(1)
}

func (m *mockSQSClient) ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqs.ReceiveMessageOutput), args.Error(1)
}

func (m *mockSQSClient) DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqs.DeleteMessageOutput), args.Error(1)
}

func newTestService(client SQSClient) *SQSService {
	return NewSQSService(client, &config.SQSConfig{
		IndexQueueURL:   "http://sqs/index",
		ArchiveQueueURL: "http://sqs/archive",
		CleanupQueueURL: "http://sqs/cleanup",
	})
}

func TestSendIndexMessage(t *testing.T) {
	client := new(mockSQSClient)
	svc := newTestService(client)
	ctx := context.Background()
	event := &domain.DocumentEvent{DocumentID: "doc-1", UserID: "landlord-1", Title: "Notice", CreatedAt: time.Now().UTC()}

	var sent Message
	client.On("SendMessage", ctx, mock.MatchedBy(func(in *sqs.SendMessageInput) bool {
		return aws.ToString(in.QueueUrl) == "http://sqs/index" &&
			json.Unmarshal([]byte(aws.ToString(in.MessageBody)), &sent) == nil
	})).Return(&sqs.SendMessageOutput{}, nil)

	err := svc.SendIndexMessage(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, MessageTypeIndex, sent.Type)
	assert.Equal(t, "landlord-1", sent.UserID)
	require.Len(t, sent.Documents, 1)
	assert.Equal(t, "doc-1", sent.Documents[0].DocumentID)
	client.AssertExpectations(t)
}

func TestSendCleanupMessageWithArchive(t *testing.T) {
	client := new(mockSQSClient)
	svc := newTestService(client)
	ctx := context.Background()
	before := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var sent Message
	client.On("SendMessage", ctx, mock.MatchedBy(func(in *sqs.SendMessageInput) bool {
		return aws.ToString(in.QueueUrl) == "http://sqs/cleanup" &&
			json.Unmarshal([]byte(aws.ToString(in.MessageBody)), &sent) == nil
	})).Return(&sqs.SendMessageOutput{}, nil)

	err := svc.SendCleanupMessageWithArchive(ctx, "landlord-1", before, "documents/landlord-1/a.json")

	require.NoError(t, err)
	assert.Equal(t, MessageTypeCleanup, sent.Type)
	assert.True(t, before.Equal(sent.BeforeDate))
	assert.Equal(t, "documents/landlord-1/a.json", sent.ArchiveKey)
}

func TestSendMessage_Error(t *testing.T) {
	client := new(mockSQSClient)
	svc := newTestService(client)
	client.On("SendMessage", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	err := svc.SendArchiveMessage(context.Background(), "landlord-1", time.Now())

	assert.ErrorContains(t, err, "failed to send message")
}

func TestReceiveMessages(t *testing.T) {
	client := new(mockSQSClient)
	svc := newTestService(client)
	ctx := context.Background()
	body, err := json.Marshal(Message{Type: MessageTypeArchive, UserID: "landlord-1"})
	require.NoError(t, err)

	client.On("ReceiveMessage", ctx, mock.AnythingOfType("*sqs.ReceiveMessageInput")).Return(&sqs.ReceiveMessageOutput{
		Messages: []types.Message{{Body: aws.String(string(body)), ReceiptHandle: aws.String("rh-1")}},
	}, nil)

	messages, err := svc.ReceiveMessages(ctx, svc.ArchiveQueueURL(), 10, 0)

	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, MessageTypeArchive, messages[0].Message.Type)
	assert.Equal(t, "rh-1", aws.ToString(messages[0].ReceiptHandle))
}
