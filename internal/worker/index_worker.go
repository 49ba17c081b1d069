package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/atelierhq/design-studio-api/internal/config"
	"github.com/atelierhq/design-studio-api/internal/repository"
	"github.com/atelierhq/design-studio-api/internal/service/queue"
	"github.com/atelierhq/design-studio-api/pkg/logger"
)

// IndexWorker consumes INDEX messages and writes designs into the
// per-account OpenSearch index that backs free-text search.
type IndexWorker struct {
	sqsService   *queue.SQSService
	search       repository.SearchRepository
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewIndexWorker(
	sqsService *queue.SQSService,
	search repository.SearchRepository,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *IndexWorker {
	return &IndexWorker{
		sqsService:   sqsService,
		search:       search,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10, // Process up to 10 messages at a time
		waitTime:     20, // Long polling: wait up to 20 seconds for messages
		shutdownChan: make(chan struct{}),
	}
}

func (w *IndexWorker) Start() {
	w.logger.Info("Starting index workers...")

	// Start multiple worker goroutines
	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *IndexWorker) Stop() {
	w.logger.Info("Stopping index workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All index workers stopped")
}

func (w *IndexWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Index worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Index worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Index worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *IndexWorker) processMessages(ctx context.Context) error {
	indexQueueURL := config.DefaultSQSConfig().IndexQueueURL

	messages, err := w.sqsService.ReceiveMessages(ctx, indexQueueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if err := w.processMessage(ctx, msg.Message); err != nil {
			w.logger.Errorf("Failed to process message: %v", err)
			continue
		}

		// Only delete the message if processing was successful
		if err := w.sqsService.DeleteMessage(ctx, indexQueueURL, msg.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}

func (w *IndexWorker) processMessage(ctx context.Context, msg queue.Message) error {
	w.logger.Infof("Processing message of type %s for account %s", msg.Type, msg.AccountID)

	switch msg.Type {
	case queue.MessageTypeIndex:
		if msg.Design == nil {
			return fmt.Errorf("missing design for INDEX message")
		}

		// Index creation is idempotent; a fresh account has none yet
		if err := w.search.CreateIndex(ctx, msg.AccountID); err != nil {
			return fmt.Errorf("failed to ensure index for account %s: %w", msg.AccountID, err)
		}

		return w.search.Index(ctx, msg.Design)
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
