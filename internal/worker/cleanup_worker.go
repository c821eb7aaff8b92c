package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/kingrain94/property-docs-api/internal/repository"
	"github.com/kingrain94/property-docs-api/internal/service/queue"
	"github.com/kingrain94/property-docs-api/pkg/logger"
)

// CleanupWorker deletes archived documents from Postgres and the search index.
type CleanupWorker struct {
	*pool
	documents repository.DocumentRepository
	search    repository.SearchRepository
}

func NewCleanupWorker(
	q Queue,
	queueURL string,
	documents repository.DocumentRepository,
	search repository.SearchRepository,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *CleanupWorker {
	w := &CleanupWorker{documents: documents, search: search}
	w.pool = newPool("Cleanup", q, queueURL, w.processMessage, logger, workerCount, pollInterval)
	return w
}

func (w *CleanupWorker) processMessage(ctx context.Context, msg queue.Message) error {
	if msg.Type != queue.MessageTypeCleanup {
		return fmt.Errorf("unexpected message type on cleanup queue: %s", msg.Type)
	}

	w.logger.Infof("Processing cleanup message for user %s (before: %s, archive: %q)",
		msg.UserID, msg.BeforeDate.Format(time.RFC3339), msg.ArchiveKey)

	deleted, err := w.documents.DeleteGeneratedBefore(ctx, msg.UserID, msg.BeforeDate)
	if err != nil {
		return fmt.Errorf("failed to delete documents for user %s: %w", msg.UserID, err)
	}

	// Redelivery after a failure here repeats the database delete, which is a no-op.
	indexed, err := w.search.DeleteBefore(ctx, msg.UserID, msg.BeforeDate)
	if err != nil {
		return fmt.Errorf("failed to delete indexed documents for user %s: %w", msg.UserID, err)
	}

	w.logger.Infof("Deleted %d documents and %d index entries for user %s (before: %s)",
		deleted, indexed, msg.UserID, msg.BeforeDate.Format(time.RFC3339))

	return nil
}
