// Package blobstore is a client of the external blob storage API used for
// feed artifacts.
package blobstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client uploads and deletes blobs via http.
type Client struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	userAgent string
}

// NewClient returns new Client.
func NewClient(client *http.Client, baseURL string, apiKey string, userAgent string) *Client {
	return &Client{
		client:    client,
		baseURL:   baseURL,
		apiKey:    apiKey,
		userAgent: userAgent,
	}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload stores data under key and returns the public URL of the blob.
func (c *Client) Upload(ctx context.Context, key string, data []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.blobURL(key), bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Content-Type", "application/gzip")
	c.addHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("can't get http response: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("can't upload blob %q: %w (%d)", key, ErrStatusNotOK, resp.StatusCode)
	}

	var uploaded uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return "", fmt.Errorf("can't decode upload response: %w", err)
	}

	return uploaded.URL, nil
}

// Delete removes the blob under key. Returns false when the blob didn't exist.
func (c *Client) Delete(ctx context.Context, key string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.blobURL(key), nil)
	if err != nil {
		return false, fmt.Errorf("can't build http request: %w", err)
	}

	c.addHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("can't get http response: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("can't delete blob %q: %w (%d)", key, ErrStatusNotOK, resp.StatusCode)
	}
}

func (c *Client) blobURL(key string) string {
	return fmt.Sprintf("%s/blobs/%s", c.baseURL, key)
}

func (c *Client) addHeaders(req *http.Request) {
	req.Header.Add("Authorization", "Bearer "+c.apiKey)
	req.Header.Add("User-Agent", c.userAgent)
}
