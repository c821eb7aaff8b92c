package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/kingrain94/property-docs-api/internal/config"
	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/internal/utils"
)

type Repository interface {
	// Index indexes a single document event
	Index(ctx context.Context, event *domain.DocumentEvent) error
	// Search runs a full-text query over the caller's documents
	Search(ctx context.Context, filter *domain.DocumentFilter) ([]domain.DocumentEvent, error)
	// CreateIndex creates the monthly index for a landlord if it doesn't exist
	CreateIndex(ctx context.Context, userID string, t time.Time) error
	// DeleteBefore removes every indexed document of userID created before beforeDate
	DeleteBefore(ctx context.Context, userID string, beforeDate time.Time) (int64, error)
}

type repository struct {
	client *opensearch.Client
	config *config.OpenSearchConfig
}

func NewRepository(client *opensearch.Client, config *config.OpenSearchConfig) Repository {
	return &repository{
		client: client,
		config: config,
	}
}

func indexTime(event *domain.DocumentEvent) time.Time {
	if event.CreatedAt.IsZero() {
		return time.Now()
	}
	return event.CreatedAt
}

func (r *repository) Index(ctx context.Context, event *domain.DocumentEvent) error {
	at := indexTime(event)
	indexName := r.config.GetIndexName(event.UserID, at)

	if err := r.CreateIndex(ctx, event.UserID, at); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal document event: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      indexName,
		DocumentID: event.DocumentID,
		Body:       strings.NewReader(string(data)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

func (r *repository) Search(ctx context.Context, filter *domain.DocumentFilter) ([]domain.DocumentEvent, error) {
	identity, err := utils.GetIdentityFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get identity from context: %w", err)
	}

	queryJSON, err := json.Marshal(buildSearchQuery(identity.ID, filter))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.config.GetIndexPattern(identity.ID)},
		Body:  strings.NewReader(string(queryJSON)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == 404 {
			return []domain.DocumentEvent{}, nil
		}
		return nil, fmt.Errorf("search request failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				Source domain.DocumentEvent `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	events := make([]domain.DocumentEvent, 0, len(searchResult.Hits.Hits))
	for _, hit := range searchResult.Hits.Hits {
		events = append(events, hit.Source)
	}

	return events, nil
}

func (r *repository) DeleteBefore(ctx context.Context, userID string, beforeDate time.Time) (int64, error) {
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": []map[string]any{
					createTermQuery("user_id", userID),
					createTimeRangeQuery(time.Time{}, beforeDate, true),
				},
			},
		},
	}
	queryJSON, err := json.Marshal(query)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal query: %w", err)
	}

	ignoreUnavailable := true
	req := opensearchapi.DeleteByQueryRequest{
		Index:             []string{r.config.GetIndexPattern(userID)},
		Body:              strings.NewReader(string(queryJSON)),
		IgnoreUnavailable: &ignoreUnavailable,
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return 0, fmt.Errorf("failed to execute delete by query: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == 404 {
			return 0, nil
		}
		return 0, fmt.Errorf("delete by query failed: %s", res.String())
	}

	var result struct {
		Deleted int64 `json:"deleted"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}
	return result.Deleted, nil
}

// buildSearchQuery constructs the OpenSearch query based on the filter.
// The index pattern alone also matches ids sharing userID as a prefix, so the
// owner is always matched explicitly.
func buildSearchQuery(userID string, filter *domain.DocumentFilter) map[string]any {
	must := []map[string]any{createTermQuery("user_id", userID)}

	exactMatches := []struct{ field, value string }{
		{"property_id", filter.PropertyID},
		{"tenant_id", filter.TenantID},
		{"category", filter.Category},
	}
	for _, m := range exactMatches {
		if m.value != "" {
			must = append(must, createTermQuery(m.field, m.value))
		}
	}

	if filter.Query != "" {
		must = append(must, map[string]any{
			"multi_match": map[string]any{
				"query":  filter.Query,
				"fields": []string{"title^2", "body"},
			},
		})
	}

	if !filter.StartTime.IsZero() || !filter.EndTime.IsZero() {
		must = append(must, createTimeRangeQuery(filter.StartTime, filter.EndTime, false))
	}

	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": must,
			},
		},
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query["from"] = (filter.Page - 1) * filter.PageSize
		query["size"] = filter.PageSize
	}

	query["sort"] = []map[string]any{
		{"_score": map[string]any{"order": "desc"}},
		{"created_at": map[string]any{"order": "desc"}},
	}

	return query
}

func createTermQuery(field, value string) map[string]any {
	return map[string]any{
		"term": map[string]any{
			field: value,
		},
	}
}

// createTimeRangeQuery filters on created_at. exclusiveEnd switches the upper bound from lte to lt.
func createTimeRangeQuery(startTime, endTime time.Time, exclusiveEnd bool) map[string]any {
	timeRange := make(map[string]any)
	if !startTime.IsZero() {
		timeRange["gte"] = startTime
	}
	if !endTime.IsZero() {
		if exclusiveEnd {
			timeRange["lt"] = endTime
		} else {
			timeRange["lte"] = endTime
		}
	}
	return map[string]any{
		"range": map[string]any{
			"created_at": timeRange,
		},
	}
}

// getIndexMapping returns the mapping for document indices
func (r *repository) getIndexMapping() string {
	return `{
		"mappings": {
			"properties": {
				"document_id": { "type": "keyword" },
				"user_id": { "type": "keyword" },
				"template_id": { "type": "keyword" },
				"property_id": { "type": "keyword" },
				"tenant_id": { "type": "keyword" },
				"category": { "type": "keyword" },
				"title": { "type": "text" },
				"body": { "type": "text" },
				"is_shared": { "type": "boolean" },
				"created_at": { "type": "date" }
			}
		},
		"settings": {
			"index": {
				"number_of_shards": 1,
				"number_of_replicas": 1,
				"refresh_interval": "1s"
			}
		}
	}`
}

func (r *repository) CreateIndex(ctx context.Context, userID string, t time.Time) error {
	indexName := r.config.GetIndexName(userID, t)

	exists := opensearchapi.IndicesExistsRequest{
		Index: []string{indexName},
	}
	res, err := exists.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 200 {
		return nil
	}

	create := opensearchapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(r.getIndexMapping()),
	}

	res, err = create.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index: %s", res.String())
	}

	return nil
}
