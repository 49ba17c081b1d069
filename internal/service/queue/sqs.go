package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/atelierhq/design-studio-api/internal/config"
	"github.com/atelierhq/design-studio-api/internal/domain"
)

type MessageType string

const (
	// MessageTypeIndex asks the index worker to index a design in OpenSearch.
	MessageTypeIndex MessageType = "INDEX"
	// MessageTypeMirror asks the asset worker to copy provider image URLs
	// into the asset bucket before they expire.
	MessageTypeMirror MessageType = "MIRROR"
	// MessageTypeReconcile reports provider output that was produced but
	// never persisted, so the asset worker can record it for operators.
	MessageTypeReconcile MessageType = "RECONCILE"
)

type Message struct {
	Type      MessageType    `json:"type"`
	AccountID string         `json:"account_id"`
	Design    *domain.Design `json:"design,omitempty"`
	Timestamp time.Time      `json:"timestamp"`

	// Fields for mirror/reconcile operations
	DesignID  string   `json:"design_id,omitempty"`
	ImageURLs []string `json:"image_urls,omitempty"`
	Reason    string   `json:"reason,omitempty"`
}

type ReceivedMessage struct {
	Message       Message
	ReceiptHandle *string
}

type SQSService struct {
	client        *sqs.Client
	indexQueueURL string
	assetQueueURL string
}

func NewSQSService(client *sqs.Client, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:        client,
		indexQueueURL: config.IndexQueueURL,
		assetQueueURL: config.AssetQueueURL,
	}
}

func (s *SQSService) SendIndexMessage(ctx context.Context, design *domain.Design) error {
	msg := Message{
		Type:      MessageTypeIndex,
		AccountID: design.AccountID,
		Design:    design,
		Timestamp: design.CreatedAt,
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) SendMirrorMessage(ctx context.Context, design *domain.Design) error {
	if len(design.ImageURLs) == 0 {
		return nil
	}

	msg := Message{
		Type:      MessageTypeMirror,
		AccountID: design.AccountID,
		DesignID:  design.ID,
		ImageURLs: design.ImageURLs,
		Timestamp: time.Now(),
	}

	return s.sendMessage(ctx, msg, s.assetQueueURL)
}

func (s *SQSService) SendReconcileMessage(ctx context.Context, accountID string, imageURLs []string, reason string) error {
	msg := Message{
		Type:      MessageTypeReconcile,
		AccountID: accountID,
		ImageURLs: imageURLs,
		Reason:    reason,
		Timestamp: time.Now(),
	}

	return s.sendMessage(ctx, msg, s.assetQueueURL)
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
