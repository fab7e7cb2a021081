// Package rest is the transport the entity services talk through: a JSON
// client bound to the API origin that returns parsed bodies or an error
// carrying the server's message on non-2xx responses.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/lojahub/backoffice/internal/errors"
	"github.com/lojahub/backoffice/internal/metrics"
)

// Client issues the four verbs the back-office API uses. A nil out skips
// body decoding.
type Client interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

type client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) Client {
	return &client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// errorBody is the error payload shape the API responds with on non-2xx.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return apperrors.NetworkError("").WithError(fmt.Errorf("encode request body: %w", err))
		}

		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperrors.NetworkError("").WithError(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	finish := metrics.RequestStarted(method, path)

	resp, err := c.http.Do(req)
	if err != nil {
		finish(0)

		return apperrors.NetworkError("").WithError(err)
	}

	defer resp.Body.Close()

	finish(resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NetworkError("").WithError(fmt.Errorf("decode response body: %w", err))
	}

	return nil
}

// decodeError prefers the server-supplied message; services fill in a
// per-operation default when none is present.
func decodeError(resp *http.Response) error {
	var payload errorBody

	data, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(data, &payload)

	message := payload.Error
	if message == "" {
		message = payload.Message
	}

	if resp.StatusCode == http.StatusNotFound {
		return apperrors.NotFoundError(message)
	}

	return apperrors.ServerError(message, resp.StatusCode)
}
