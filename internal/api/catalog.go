package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lamdoan/classdesk/internal/model"
)

// Users fetches the account collection.
func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	return fetchList[model.User](ctx, c, "/users")
}

// Classes fetches the class reference collection.
func (c *Client) Classes(ctx context.Context) ([]model.Class, error) {
	return fetchList[model.Class](ctx, c, "/classes")
}

// CreateClass registers a new class reference.
func (c *Client) CreateClass(ctx context.Context, class model.Class) error {
	if _, err := c.Request(ctx, http.MethodPost, "/classes", class); err != nil {
		return fmt.Errorf("create class request failed: %w", err)
	}
	return nil
}

// Scores fetches the score collection.
func (c *Client) Scores(ctx context.Context) ([]model.Score, error) {
	return fetchList[model.Score](ctx, c, "/scores")
}

// RecordScore records or replaces the score for (studentId, scoreType).
func (c *Client) RecordScore(ctx context.Context, score model.Score) error {
	if _, err := c.Request(ctx, http.MethodPost, "/scores", score); err != nil {
		return fmt.Errorf("record score request failed: %w", err)
	}
	return nil
}
