package api

import (
	"context"
	"net/url"
)

// The helpers below are the one gateway template every resource follows:
// perform the call, decode the envelope, normalize each record. Raw backend
// field names never travel past the norm function.

// ListResource performs a paginated list GET and normalizes every record.
// The returned slice is never nil.
func ListResource[T any](ctx context.Context, c *Client, path string, q url.Values, norm func(map[string]any) T) ([]T, int, error) {
	raw, err := c.Get(ctx, path, q)
	if err != nil {
		return nil, 0, err
	}
	items, total, err := DecodeList(raw)
	if err != nil {
		return nil, 0, err
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		out = append(out, norm(it))
	}
	return out, total, nil
}

// GetResource fetches and normalizes a single record.
func GetResource[T any](ctx context.Context, c *Client, path string, norm func(map[string]any) T) (T, error) {
	var zero T
	raw, err := c.Get(ctx, path, nil)
	if err != nil {
		return zero, err
	}
	obj, err := DecodeObject(raw)
	if err != nil {
		return zero, err
	}
	return norm(obj), nil
}

// CreateResource POSTs payload and normalizes the created record.
func CreateResource[T any](ctx context.Context, c *Client, path string, payload map[string]any, norm func(map[string]any) T) (T, error) {
	var zero T
	raw, err := c.Post(ctx, path, payload)
	if err != nil {
		return zero, err
	}
	obj, err := DecodeObject(raw)
	if err != nil {
		return zero, err
	}
	return norm(obj), nil
}

// UpdateResource PATCHes payload and normalizes the updated record.
func UpdateResource[T any](ctx context.Context, c *Client, path string, payload map[string]any, norm func(map[string]any) T) (T, error) {
	var zero T
	raw, err := c.Patch(ctx, path, payload)
	if err != nil {
		return zero, err
	}
	obj, err := DecodeObject(raw)
	if err != nil {
		return zero, err
	}
	return norm(obj), nil
}
