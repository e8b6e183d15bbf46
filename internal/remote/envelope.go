package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Page is the list envelope every paginated endpoint answers with:
//
//	{"data": [...], "total_records": 32, "total_pages": 3, "page_size": 15, "page": 2}
type Page[T any] struct {
	Data         []T `json:"data"`
	TotalRecords int `json:"total_records"`
	TotalPages   int `json:"total_pages"`
	PageSize     int `json:"page_size"`
	Page         int `json:"page"`
}

type rawPage struct {
	Data         json.RawMessage `json:"data"`
	TotalRecords *int            `json:"total_records"`
	TotalPages   *int            `json:"total_pages"`
	PageSize     int             `json:"page_size"`
	Page         int             `json:"page"`
}

type rawResource struct {
	Data json.RawMessage `json:"data"`
}

func decodePage[T any](path string, body []byte) (*Page[T], error) {
	var raw rawPage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &EnvelopeError{Path: path, Reason: fmt.Sprintf("body is not an object: %v", err)}
	}
	if !isJSONArray(raw.Data) {
		return nil, &EnvelopeError{Path: path, Reason: "data is missing or not an array"}
	}
	if raw.TotalRecords == nil || raw.TotalPages == nil {
		return nil, &EnvelopeError{Path: path, Reason: "total_records and total_pages are required"}
	}
	if *raw.TotalRecords < 0 || *raw.TotalPages < 0 {
		return nil, &EnvelopeError{Path: path, Reason: "negative totals"}
	}

	page := &Page[T]{
		TotalRecords: *raw.TotalRecords,
		TotalPages:   *raw.TotalPages,
		PageSize:     raw.PageSize,
		Page:         raw.Page,
	}
	if err := json.Unmarshal(raw.Data, &page.Data); err != nil {
		return nil, &EnvelopeError{Path: path, Reason: fmt.Sprintf("decode rows: %v", err)}
	}
	return page, nil
}

// decodeList reads an unpaginated list wrapped as {"data": [...]}.
func decodeList[T any](path string, body []byte) ([]T, error) {
	var raw rawResource
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &EnvelopeError{Path: path, Reason: fmt.Sprintf("body is not an object: %v", err)}
	}
	if !isJSONArray(raw.Data) {
		return nil, &EnvelopeError{Path: path, Reason: "data is missing or not an array"}
	}
	var rows []T
	if err := json.Unmarshal(raw.Data, &rows); err != nil {
		return nil, &EnvelopeError{Path: path, Reason: fmt.Sprintf("decode rows: %v", err)}
	}
	return rows, nil
}

// decodeResource reads a single record wrapped as {"data": {...}}.
func decodeResource[T any](path string, body []byte) (*T, error) {
	var raw rawResource
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &EnvelopeError{Path: path, Reason: fmt.Sprintf("body is not an object: %v", err)}
	}
	trimmed := bytes.TrimSpace(raw.Data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &EnvelopeError{Path: path, Reason: "data is missing or not an object"}
	}
	var item T
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return nil, &EnvelopeError{Path: path, Reason: fmt.Sprintf("decode record: %v", err)}
	}
	return &item, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
