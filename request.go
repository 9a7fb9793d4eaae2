package lemon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// apiError carries a failed HTTP response through to Classify. Not exposed
// to callers; every resource method converts it into an *Error.
type apiError struct {
	Status       int
	ErrorCode    string
	ErrorMessage string
}

func (e *apiError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("lemon api error %d (%s): %s", e.Status, e.ErrorCode, e.ErrorMessage)
	}
	return fmt.Sprintf("lemon api error %d: %s", e.Status, http.StatusText(e.Status))
}

// doRequest performs one HTTP request. No retries, no caching: each call is
// exactly one network round trip, canceled via ctx.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode >= 400 {
		aerr := &apiError{Status: resp.StatusCode}
		// The body is optional detail; a non-JSON body still classifies
		// by status alone.
		var eb apiErrorBody
		if json.Unmarshal(respBody, &eb) == nil {
			aerr.ErrorCode = eb.ErrorCode
			aerr.ErrorMessage = eb.ErrorMessage
		}
		return nil, aerr
	}

	return respBody, nil
}

// do issues one request and decodes the response envelope.
func do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (*envelope[T], error) {
	respBody, err := c.doRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	var env envelope[T]
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &env, nil
}
