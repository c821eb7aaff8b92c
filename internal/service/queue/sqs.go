package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/kingrain94/property-docs-api/internal/config"
	"github.com/kingrain94/property-docs-api/internal/domain"
)

type MessageType string

const (
	MessageTypeIndex   MessageType = "INDEX"
	MessageTypeArchive MessageType = "ARCHIVE"
	MessageTypeCleanup MessageType = "CLEANUP"
)

type Message struct {
	Type      MessageType            `json:"type"`
	UserID    string                 `json:"user_id"`
	Documents []domain.DocumentEvent `json:"documents,omitempty"`
	Timestamp time.Time              `json:"timestamp"`

	// Fields for archive/cleanup operations
	BeforeDate time.Time `json:"before_date,omitempty"`
	ArchiveKey string    `json:"archive_key,omitempty"`
}

type ReceivedMessage struct {
	Message       Message
	ReceiptHandle *string
}

// SQSClient is the part of the SQS API the service uses. *sqs.Client satisfies it.
type SQSClient interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

type SQSService struct {
	client          SQSClient
	indexQueueURL   string
	archiveQueueURL string
	cleanupQueueURL string
}

func NewSQSService(client SQSClient, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:          client,
		indexQueueURL:   config.IndexQueueURL,
		archiveQueueURL: config.ArchiveQueueURL,
		cleanupQueueURL: config.CleanupQueueURL,
	}
}

func (s *SQSService) IndexQueueURL() string   { return s.indexQueueURL }
func (s *SQSService) ArchiveQueueURL() string { return s.archiveQueueURL }
func (s *SQSService) CleanupQueueURL() string { return s.cleanupQueueURL }

func (s *SQSService) SendIndexMessage(ctx context.Context, event *domain.DocumentEvent) error {
	msg := Message{
		Type:      MessageTypeIndex,
		UserID:    event.UserID,
		Documents: []domain.DocumentEvent{*event},
		Timestamp: event.CreatedAt,
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) SendArchiveMessage(ctx context.Context, userID string, beforeDate time.Time) error {
	msg := Message{
		Type:       MessageTypeArchive,
		UserID:     userID,
		BeforeDate: beforeDate,
		Timestamp:  time.Now(),
	}

	return s.sendMessage(ctx, msg, s.archiveQueueURL)
}

// SendCleanupMessageWithArchive queues deletion and records where the documents were archived.
func (s *SQSService) SendCleanupMessageWithArchive(ctx context.Context, userID string, beforeDate time.Time, archiveKey string) error {
	msg := Message{
		Type:       MessageTypeCleanup,
		UserID:     userID,
		BeforeDate: beforeDate,
		ArchiveKey: archiveKey,
		Timestamp:  time.Now(),
	}

	return s.sendMessage(ctx, msg, s.cleanupQueueURL)
}

func (s *SQSService) sendMessage(ctx context.Context, msg Message, queueURL string) error {
	msgBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBody)),
		QueueUrl:    aws.String(queueURL),
	}

	_, err = s.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (s *SQSService) ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]ReceivedMessage, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(queueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	}

	output, err := s.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	var messages []ReceivedMessage
	for _, msg := range output.Messages {
		var message Message
		if err := json.Unmarshal([]byte(*msg.Body), &message); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %w", err)
		}
		messages = append(messages, ReceivedMessage{
			Message:       message,
			ReceiptHandle: msg.ReceiptHandle,
		})
	}

	return messages, nil
}

func (s *SQSService) DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error {
	input := &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: receiptHandle,
	}

	_, err := s.client.DeleteMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
