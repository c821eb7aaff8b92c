package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/internal/repository"
	"github.com/kingrain94/property-docs-api/internal/service/queue"
	"github.com/kingrain94/property-docs-api/pkg/logger"
)

// ObjectStore is satisfied by *s3.Client.
type ObjectStore interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// CleanupQueue receives the follow-up message of a finished archive.
type CleanupQueue interface {
	SendCleanupMessageWithArchive(ctx context.Context, userID string, beforeDate time.Time, archiveKey string) error
}

// Archive is the JSON bundle written to S3 before documents are deleted.
type Archive struct {
	UserID        string            `json:"user_id"`
	BeforeDate    time.Time         `json:"before_date"`
	ArchivedAt    time.Time         `json:"archived_at"`
	DocumentCount int               `json:"document_count"`
	Documents     []domain.Document `json:"documents"`
}

// ArchiveWorker saves a landlord's old generated documents to S3 and then
// queues their deletion.
type ArchiveWorker struct {
	*pool
	documents repository.DocumentRepository
	cleanup   CleanupQueue
	store     ObjectStore
	bucket    string
	now       func() time.Time
}

func NewArchiveWorker(
	q Queue,
	queueURL string,
	cleanup CleanupQueue,
	documents repository.DocumentRepository,
	store ObjectStore,
	bucket string,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *ArchiveWorker {
	w := &ArchiveWorker{
		documents: documents,
		cleanup:   cleanup,
		store:     store,
		bucket:    bucket,
		now:       time.Now,
	}
	w.pool = newPool("Archive", q, queueURL, w.processMessage, logger, workerCount, pollInterval)
	return w
}

// ArchiveKey is the S3 key of the bundle for userID and beforeDate.
func ArchiveKey(userID string, beforeDate time.Time) string {
	return fmt.Sprintf("documents/%s/documents_before_%s.json", userID, beforeDate.UTC().Format("2006-01-02_15-04-05"))
}

func (w *ArchiveWorker) processMessage(ctx context.Context, msg queue.Message) error {
	if msg.Type != queue.MessageTypeArchive {
		return fmt.Errorf("unexpected message type on archive queue: %s", msg.Type)
	}

	w.logger.Infof("Processing archive message for user %s (before: %s)",
		msg.UserID, msg.BeforeDate.Format(time.RFC3339))

	docs, err := w.documents.ListGeneratedBefore(ctx, msg.UserID, msg.BeforeDate)
	if err != nil {
		return fmt.Errorf("failed to fetch documents for archival for user %s: %w", msg.UserID, err)
	}

	// Nothing to keep, but cleanup still runs so the search index follows.
	if len(docs) == 0 {
		w.logger.Infof("No documents to archive for user %s before %s", msg.UserID, msg.BeforeDate.Format(time.RFC3339))
		return w.enqueueCleanup(ctx, msg.UserID, msg.BeforeDate, "")
	}

	key := ArchiveKey(msg.UserID, msg.BeforeDate)
	if err := w.upload(ctx, key, msg.UserID, msg.BeforeDate, docs); err != nil {
		return fmt.Errorf("failed to archive documents for user %s: %w", msg.UserID, err)
	}

	w.logger.Infof("Archived %d documents for user %s to s3://%s/%s", len(docs), msg.UserID, w.bucket, key)

	return w.enqueueCleanup(ctx, msg.UserID, msg.BeforeDate, key)
}

func (w *ArchiveWorker) upload(ctx context.Context, key, userID string, beforeDate time.Time, docs []domain.Document) error {
	archivedAt := w.now().UTC()

	body, err := json.MarshalIndent(Archive{
		UserID:        userID,
		BeforeDate:    beforeDate,
		ArchivedAt:    archivedAt,
		DocumentCount: len(docs),
		Documents:     docs,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal documents to JSON: %w", err)
	}

	_, err = w.store.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(w.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"user-id":        userID,
			"archived-at":    archivedAt.Format(time.RFC3339),
			"document-count": strconv.Itoa(len(docs)),
			"before-date":    beforeDate.Format(time.RFC3339),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload archive to S3: %w", err)
	}
	return nil
}

func (w *ArchiveWorker) enqueueCleanup(ctx context.Context, userID string, beforeDate time.Time, archiveKey string) error {
	if err := w.cleanup.SendCleanupMessageWithArchive(ctx, userID, beforeDate, archiveKey); err != nil {
		return fmt.Errorf("failed to enqueue cleanup message: %w", err)
	}

	w.logger.Infof("Enqueued cleanup message for user %s", userID)
	return nil
}
