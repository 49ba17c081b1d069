package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/atelierhq/design-studio-api/internal/config"
	"github.com/atelierhq/design-studio-api/internal/service/queue"
	"github.com/atelierhq/design-studio-api/pkg/logger"
)

// AssetWorker consumes MIRROR and RECONCILE messages. Mirroring copies
// provider image URLs into the asset bucket before they expire; reconcile
// reports are stored next to them so operators can follow up on provider
// output that never made it into the database.
type AssetWorker struct {
	sqsService   *queue.SQSService
	s3Client     *s3.Client
	s3Config     *config.S3Config
	httpClient   *http.Client
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewAssetWorker(
	sqsService *queue.SQSService,
	s3Client *s3.Client,
	s3Config *config.S3Config,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *AssetWorker {
	return &AssetWorker{
		sqsService:   sqsService,
		s3Client:     s3Client,
		s3Config:     s3Config,
		httpClient:   &http.Client{Timeout: 60 * time.Second},
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10,
		waitTime:     20,
		shutdownChan: make(chan struct{}),
	}
}

func (w *AssetWorker) Start() {
	w.logger.Info("Starting asset workers...")

	// Start multiple worker goroutines
	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *AssetWorker) Stop() {
	w.logger.Info("Stopping asset workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All asset workers stopped")
}

func (w *AssetWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Asset worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Asset worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Asset worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *AssetWorker) processMessages(ctx context.Context) error {
	assetQueueURL := config.DefaultSQSConfig().AssetQueueURL

	messages, err := w.sqsService.ReceiveMessages(ctx, assetQueueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		var err error
		switch msg.Message.Type {
		case queue.MessageTypeMirror:
			err = w.processMirrorMessage(ctx, msg.Message)
		case queue.MessageTypeReconcile:
			err = w.processReconcileMessage(ctx, msg.Message)
		default:
			w.logger.Warnf("Skipping message of unknown type %s", msg.Message.Type)
			continue
		}

		if err != nil {
			w.logger.Errorf("Failed to process %s message: %v", msg.Message.Type, err)
			continue
		}

		// Only delete the message if processing was successful
		if err := w.sqsService.DeleteMessage(ctx, assetQueueURL, msg.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}

func (w *AssetWorker) processMirrorMessage(ctx context.Context, msg queue.Message) error {
	w.logger.Infof("Mirroring %d images for design %s", len(msg.ImageURLs), msg.DesignID)

	for i, url := range msg.ImageURLs {
		key := fmt.Sprintf("designs/%s/%s/render_%d.png", msg.AccountID, msg.DesignID, i)
		if err := w.mirrorImage(ctx, url, key); err != nil {
			return fmt.Errorf("failed to mirror image %d for design %s: %w", i, msg.DesignID, err)
		}
	}

	w.logger.Infof("Mirrored %d images for design %s to s3://%s", len(msg.ImageURLs), msg.DesignID, w.s3Config.BucketName)
	return nil
}

func (w *AssetWorker) mirrorImage(ctx context.Context, url, key string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image download returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read image body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" || !strings.HasPrefix(contentType, "image/") {
		contentType = "image/png"
	}

	_, err = w.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &w.s3Config.BucketName,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"source-url":  url,
			"mirrored-at": time.Now().Format(time.RFC3339),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload image to S3: %w", err)
	}

	return nil
}

// processReconcileMessage stores an orphan report: the provider produced
// output the API could not persist, so quota was not charged and the output
// is not in the database.
func (w *AssetWorker) processReconcileMessage(ctx context.Context, msg queue.Message) error {
	w.logger.Warnf("Recording orphaned provider output for account %s: %s", msg.AccountID, msg.Reason)

	report := map[string]interface{}{
		"account_id":  msg.AccountID,
		"image_urls":  msg.ImageURLs,
		"reason":      msg.Reason,
		"reported_at": msg.Timestamp,
		"recorded_at": time.Now(),
	}

	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal orphan report: %w", err)
	}

	key := fmt.Sprintf("reconcile/%s/orphan_%s.json", msg.AccountID, time.Now().Format("2006-01-02_15-04-05"))

	_, err = w.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &w.s3Config.BucketName,
		Key:         &key,
		Body:        bytes.NewReader(jsonData),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"account-id":  msg.AccountID,
			"recorded-at": time.Now().Format(time.RFC3339),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload orphan report to S3: %w", err)
	}

	w.logger.Infof("Stored orphan report for account %s: s3://%s/%s", msg.AccountID, w.s3Config.BucketName, key)
	return nil
}
