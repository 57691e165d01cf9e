package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lamdoan/classdesk/internal/model"
)

var _ model.CatalogAPI = (*Client)(nil)

// Students fetches the full student collection.
func (c *Client) Students(ctx context.Context) ([]model.Student, error) {
	return fetchList[model.Student](ctx, c, "/students")
}

// Student fetches a single student by id.
func (c *Client) Student(ctx context.Context, id string) (model.Student, error) {
	return fetchOne[model.Student](ctx, c, "/students/"+id)
}

// CreateStudent registers a new student and returns it with the
// server-assigned id.
func (c *Client) CreateStudent(ctx context.Context, student model.Student) (model.Student, error) {
	data, err := c.Request(ctx, http.MethodPost, "/students", student)
	if err != nil {
		return model.Student{}, fmt.Errorf("create student request failed: %w", err)
	}

	var created model.Student
	if err := json.Unmarshal(data, &created); err != nil {
		return model.Student{}, fmt.Errorf("failed to decode student: %w", err)
	}

	return created, nil
}

// UpdateStudent replaces the attributes of an existing student.
func (c *Client) UpdateStudent(ctx context.Context, student model.Student) error {
	if _, err := c.Request(ctx, http.MethodPut, "/students/"+student.ID, student); err != nil {
		return fmt.Errorf("update student request failed: %w", err)
	}
	return nil
}

// DeleteStudent removes a student by id.
func (c *Client) DeleteStudent(ctx context.Context, id string) error {
	if _, err := c.Request(ctx, http.MethodDelete, "/students/"+id, nil); err != nil {
		return fmt.Errorf("delete student request failed: %w", err)
	}
	return nil
}

func fetchList[T any](ctx context.Context, c *Client, endpoint string) ([]T, error) {
	data, err := c.Request(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("request %s failed: %w", endpoint, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}

	return items, nil
}

func fetchOne[T any](ctx context.Context, c *Client, endpoint string) (T, error) {
	var item T

	data, err := c.Request(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return item, fmt.Errorf("request %s failed: %w", endpoint, err)
	}

	if err := json.Unmarshal(data, &item); err != nil {
		return item, fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}

	return item, nil
}
