package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/atelierhq/design-studio-api/internal/config"
	"github.com/atelierhq/design-studio-api/internal/domain"
	"github.com/atelierhq/design-studio-api/internal/repository"
)

type searchRepository struct {
	client *opensearch.Client
	config *config.OpenSearchConfig
}

func NewRepository(client *opensearch.Client, config *config.OpenSearchConfig) repository.SearchRepository {
	return &searchRepository{
		client: client,
		config: config,
	}
}

func (r *searchRepository) Index(ctx context.Context, design *domain.Design) error {
	indexName := r.config.GetIndexName(design.AccountID)

	if err := r.CreateIndex(ctx, design.AccountID); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}

	data, err := json.Marshal(design)
	if err != nil {
		return fmt.Errorf("failed to marshal design: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      indexName,
		DocumentID: design.ID,
		Body:       strings.NewReader(string(data)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to index design: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index request failed: %s", res.String())
	}

	return nil
}

func (r *searchRepository) Search(ctx context.Context, filter *domain.DesignFilter) ([]domain.Design, error) {
	if filter.AccountID == "" {
		return nil, fmt.Errorf("account_id is required for search")
	}

	query := r.buildSearchQuery(filter)

	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.config.GetIndexName(filter.AccountID)},
		Body:  strings.NewReader(string(queryJSON)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == 404 {
			return []domain.Design{}, nil
		}
		return nil, fmt.Errorf("search request failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				Source domain.Design `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var designs []domain.Design
	for _, hit := range searchResult.Hits.Hits {
		designs = append(designs, hit.Source)
	}

	return designs, nil
}

// buildSearchQuery constructs the OpenSearch query based on the filter
func (r *searchRepository) buildSearchQuery(filter *domain.DesignFilter) map[string]any {
	must := make([]map[string]any, 0)

	exactMatches := map[string]string{
		"project_id": filter.ProjectID,
		"room_type":  filter.RoomType,
		"style":      filter.Style,
	}
	for field, value := range exactMatches {
		if value != "" {
			must = append(must, createTermQuery(field, value))
		}
	}

	// Free-text query spans the description and the keywords the designer
	// asked for
	if filter.Query != "" {
		must = append(must, map[string]any{
			"multi_match": map[string]any{
				"query":  filter.Query,
				"fields": []string{"description", "keywords"},
			},
		})
	}

	if !filter.StartTime.IsZero() || !filter.EndTime.IsZero() {
		must = append(must, createTimeRangeQuery(filter.StartTime, filter.EndTime))
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
		{
			"created_at": map[string]any{
				"order": "desc",
			},
		},
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

func createTimeRangeQuery(startTime, endTime time.Time) map[string]any {
	timeRange := make(map[string]any)
	if !startTime.IsZero() {
		timeRange["gte"] = startTime
	}
	if !endTime.IsZero() {
		timeRange["lte"] = endTime
	}
	return map[string]any{
		"range": map[string]any{
			"created_at": timeRange,
		},
	}
}

// getIndexMapping returns the mapping for the design index
func (r *searchRepository) getIndexMapping() string {
	return `{
		"mappings": {
			"properties": {
				"id": { "type": "keyword" },
				"account_id": { "type": "keyword" },
				"project_id": { "type": "keyword" },
				"room_type": { "type": "keyword" },
				"style": { "type": "keyword" },
				"keywords": { "type": "text" },
				"description": { "type": "text" },
				"image_urls": { "type": "keyword" },
				"color_palette": { "type": "keyword" },
				"product_list": { "type": "text" },
				"budget": { "type": "double" },
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

func (r *searchRepository) CreateIndex(ctx context.Context, accountID string) error {
	indexName := r.config.GetIndexName(accountID)

	exists := opensearchapi.IndicesExistsRequest{
		Index: []string{indexName},
	}
	res, err := exists.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 200 {
		return nil // Index already exists
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

func (r *searchRepository) DeleteIndex(ctx context.Context, accountID string) error {
	indexName := r.config.GetIndexName(accountID)

	delete := opensearchapi.IndicesDeleteRequest{
		Index: []string{indexName},
	}

	res, err := delete.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error deleting index: %s", res.String())
	}

	return nil
}

func (r *searchRepository) Delete(ctx context.Context, accountID, designID string) error {
	indexName := r.config.GetIndexName(accountID)

	req := opensearchapi.DeleteRequest{
		Index:      indexName,
		DocumentID: designID,
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("error deleting document: %s", res.String())
	}

	return nil
}
