package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/lmelectronica/ecommerce/internal/models"
)

// ProductIndex keeps the product catalog mirrored into an Elasticsearch
// index for the full-text search endpoint.
type ProductIndex struct {
	ES    *elasticsearch.Client
	Index string
}

func (p *ProductIndex) IndexProduct(ctx context.Context, prod *models.Product) error {
	doc, err := json.Marshal(prod)
	if err != nil {
		return fmt.Errorf("search: marshal product: %w", err)
	}

	res, err := p.ES.Index(
		p.Index,
		bytes.NewReader(doc),
		p.ES.Index.WithDocumentID(strconv.FormatUint(uint64(prod.ID), 10)),
		p.ES.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("search: index product %d: %w", prod.ID, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("search: index product %d: %s", prod.ID, res.Status())
	}
	return nil
}

func (p *ProductIndex) DeleteProduct(ctx context.Context, id uint) error {
	res, err := p.ES.Delete(
		p.Index,
		strconv.FormatUint(uint64(id), 10),
		p.ES.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("search: delete product %d: %w", id, err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("search: delete product %d: %s", id, res.Status())
	}
	return nil
}

func (p *ProductIndex) Search(ctx context.Context, query string, from, size int) (int64, []models.Product, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"name^2", "description"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("search: encode query: %w", err)
	}

	res, err := p.ES.Search(
		p.ES.Search.WithContext(ctx),
		p.ES.Search.WithIndex(p.Index),
		p.ES.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: query failed: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search: query returned %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, fmt.Errorf("search: decode response: %w", err)
	}

	prods := make([]models.Product, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		prods[i] = hit.Source
	}
	return r.Hits.Total.Value, prods, nil
}
