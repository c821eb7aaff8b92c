package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/kingrain94/property-docs-api/internal/repository"
	"github.com/kingrain94/property-docs-api/internal/service/queue"
	"github.com/kingrain94/property-docs-api/pkg/logger"
)

// IndexWorker copies stored documents into the search index.
type IndexWorker struct {
	*pool
	search repository.SearchRepository
}

func NewIndexWorker(
	q Queue,
	queueURL string,
	search repository.SearchRepository,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *IndexWorker {
	w := &IndexWorker{search: search}
	w.pool = newPool("Index", q, queueURL, w.processMessage, logger, workerCount, pollInterval)
	return w
}

func (w *IndexWorker) processMessage(ctx context.Context, msg queue.Message) error {
	switch msg.Type {
	case queue.MessageTypeIndex:
		if len(msg.Documents) != 1 {
			return fmt.Errorf("invalid number of documents for INDEX message: %d", len(msg.Documents))
		}
		return w.search.Index(ctx, &msg.Documents[0])

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
