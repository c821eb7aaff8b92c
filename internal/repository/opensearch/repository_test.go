package opensearch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/property-docs-api/internal/domain"
)

func mustClauses(t *testing.T, query map[string]any) []map[string]any {
	t.Helper()
	boolQuery, ok := query["query"].(map[string]any)["bool"].(map[string]any)
	require.True(t, ok)
	must, ok := boolQuery["must"].([]map[string]any)
	require.True(t, ok)
	return must
}

func TestBuildSearchQuery(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	filter := &domain.DocumentFilter{
		PropertyID: "prop-1",
		Category:   "notice",
		Query:      "late rent",
		StartTime:  start,
		Page:       2,
		PageSize:   20,
	}

	query := buildSearchQuery("landlord-1", filter)
	must := mustClauses(t, query)

	require.Len(t, must, 5)
	assert.Equal(t, createTermQuery("user_id", "landlord-1"), must[0])
	assert.Equal(t, createTermQuery("property_id", "prop-1"), must[1])
	assert.Equal(t, createTermQuery("category", "notice"), must[2])
	assert.Equal(t, "late rent", must[3]["multi_match"].(map[string]any)["query"])
	assert.Equal(t, map[string]any{"range": map[string]any{"created_at": map[string]any{"gte": start}}}, must[4])
	assert.Equal(t, 20, query["from"])
	assert.Equal(t, 20, query["size"])
}

func TestBuildSearchQuery_Empty(t *testing.T) {
	query := buildSearchQuery("landlord-1", &domain.DocumentFilter{})

	assert.Equal(t, []map[string]any{createTermQuery("user_id", "landlord-1")}, mustClauses(t, query))
	assert.NotContains(t, query, "from")
	assert.Contains(t, query, "sort")
}

func TestCreateTimeRangeQuery_ExclusiveEnd(t *testing.T) {
	end := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	got := createTimeRangeQuery(time.Time{}, end, true)

	assert.Equal(t, map[string]any{"range": map[string]any{"created_at": map[string]any{"lt": end}}}, got)
}
