package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kingrain94/property-docs-api/internal/service/queue"
	"github.com/kingrain94/property-docs-api/pkg/logger"
)

const (
	defaultMaxMessages = 10 // Process up to 10 messages at a time
	defaultWaitTime    = 20 // Long polling: wait up to 20 seconds for messages
)

// Queue is the part of the SQS service every worker consumes from.
type Queue interface {
	ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]queue.ReceivedMessage, error)
	DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error
}

type messageHandler func(ctx context.Context, msg queue.Message) error

// pool runs workerCount goroutines that each drain queueURL on every tick
// until Stop is called.
type pool struct {
	name         string
	queue        Queue
	queueURL     string
	handle       messageHandler
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	ctx          context.Context
	cancel       context.CancelFunc
	waitGroup    sync.WaitGroup
}

func newPool(name string, q Queue, queueURL string, handle messageHandler, logger *logger.Logger, workerCount int, pollInterval time.Duration) *pool {
	ctx, cancel := context.WithCancel(context.Background())
	return &pool{
		name:         name,
		queue:        q,
		queueURL:     queueURL,
		handle:       handle,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  defaultMaxMessages,
		waitTime:     defaultWaitTime,
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (p *pool) Start() {
	p.logger.Infof("Starting %s workers...", p.name)

	for i := 0; i < p.workerCount; i++ {
		p.waitGroup.Add(1)
		go p.runWorker(i)
	}
}

// Stop cancels in-flight polls and waits for every worker to return.
func (p *pool) Stop() {
	p.logger.Infof("Stopping %s workers...", p.name)
	p.cancel()
	p.waitGroup.Wait()
	p.logger.Infof("All %s workers stopped", p.name)
}

func (p *pool) runWorker(workerID int) {
	defer p.waitGroup.Done()

	p.logger.Infof("%s worker %d started", p.name, workerID)

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			p.logger.Infof("%s worker %d shutting down", p.name, workerID)
			return
		case <-ticker.C:
			if err := p.processMessages(p.ctx); err != nil && p.ctx.Err() == nil {
				p.logger.Errorf("%s worker %d failed to process messages: %v", p.name, workerID, err)
			}
		}
	}
}

// processMessages handles one batch. A message is deleted only after it was
// handled successfully, so failures are redelivered by SQS.
func (p *pool) processMessages(ctx context.Context) error {
	messages, err := p.queue.ReceiveMessages(ctx, p.queueURL, p.maxMessages, p.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if err := p.handle(ctx, msg.Message); err != nil {
			p.logger.Errorf("Failed to process %s message for user %s: %v", msg.Message.Type, msg.Message.UserID, err)
			continue
		}

		if err := p.queue.DeleteMessage(ctx, p.queueURL, msg.ReceiptHandle); err != nil {
			p.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}
