package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ottermq/mbconsole/internal/core/models"
)

func (c *Client) ListQueues(ctx context.Context) ([]models.QueueMetadata, error) {
	var queues []models.QueueMetadata
	if err := c.do(ctx, http.MethodGet, "/queues", "/queues", nil, nil, &queues); err != nil {
		return nil, err
	}
	if queues == nil {
		queues = []models.QueueMetadata{}
	}
	return queues, nil
}

func (c *Client) GetQueue(ctx context.Context, name string) (*models.QueueMetadata, error) {
	path, err := resourcePath("/queues", name)
	if err != nil {
		return nil, err
	}
	var queue models.QueueMetadata
	if err := c.do(ctx, http.MethodGet, path, "/queues/{name}", nil, nil, &queue); err != nil {
		return nil, err
	}
	if queue.Name == "" {
		queue.Name = strings.TrimSpace(name)
	}
	return &queue, nil
}

func (c *Client) ListQueueConsumers(ctx context.Context, name string) ([]models.ConsumerMetadata, error) {
	path, err := resourcePath("/queues", name, "/consumers")
	if err != nil {
		return nil, err
	}
	var consumers []models.ConsumerMetadata
	if err := c.do(ctx, http.MethodGet, path, "/queues/{name}/consumers", nil, nil, &consumers); err != nil {
		return nil, err
	}
	if consumers == nil {
		consumers = []models.ConsumerMetadata{}
	}
	return consumers, nil
}

func (c *Client) CreateQueue(ctx context.Context, req models.CreateQueueRequest) error {
	if _, err := resourcePath("/queues", req.Name); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/queues", "/queues", nil, req, nil)
}

func (c *Client) DeleteQueue(ctx context.Context, name string, ifUnused, ifEmpty bool) error {
	path, err := resourcePath("/queues", name)
	if err != nil {
		return err
	}
	query := url.Values{
		"ifUnused": {strconv.FormatBool(ifUnused)},
		"ifEmpty":  {strconv.FormatBool(ifEmpty)},
	}
	return c.do(ctx, http.MethodDelete, path, "/queues/{name}", query, nil, nil)
}

// PurgeQueue deletes every message in the queue and returns how many were dropped.
func (c *Client) PurgeQueue(ctx context.Context, name string) (int, error) {
	path, err := resourcePath("/queues", name, "/messages")
	if err != nil {
		return 0, err
	}
	var result models.PurgeResult
	if err := c.do(ctx, http.MethodDelete, path, "/queues/{name}/messages", nil, nil, &result); err != nil {
		return 0, err
	}
	return result.NumberOfMessagesDeleted, nil
}
