package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"rentalhub-backend/internal/logger"
)

// Client talks to the hosted record store over its REST interface. Every call
// is a single round trip through one circuit breaker; there are no retries and
// no transactions.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	breaker *gobreaker.CircuitBreaker
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: timeout},
		breaker: newBreaker("record-store"),
	}
}

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(
		gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     10 * time.Second,
			Interval:    0,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 2
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				logger.Warn("Store circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
			},
			IsSuccessful: func(err error) bool {
				if err == nil {
					return true
				}
				// Client-caused 4xx responses must not trip the breaker.
				var se *Error
				return errors.As(err, &se) && se.Status >= 400 && se.Status < 500
			},
		},
	)
}

// Get fetches a single row matching the query. A miss surfaces as an *Error
// for which NotFound() is true.
func (c *Client) Get(ctx context.Context, resource string, q *Query, out any) error {
	headers := map[string]string{"Accept": "application/vnd.pgrst.object+json"}
	_, err := c.do(ctx, http.MethodGet, resource, q, headers, nil, out)
	return err
}

// List fetches all rows matching the query, honoring its order and range.
func (c *Client) List(ctx context.Context, resource string, q *Query, out any) error {
	headers := map[string]string{}
	if q != nil {
		if r := q.RangeHeader(); r != "" {
			headers["Range-Unit"] = "items"
			headers["Range"] = r
		}
	}
	_, err := c.do(ctx, http.MethodGet, resource, q, headers, nil, out)
	return err
}

// Count returns the exact number of rows matching the query's filters. The
// total is carried in the Content-Range response header; no row data is paged
// beyond the first.
func (c *Client) Count(ctx context.Context, resource string, q *Query) (int, error) {
	headers := map[string]string{
		"Prefer":     "count=exact",
		"Range-Unit": "items",
		"Range":      "0-0",
	}
	var discard json.RawMessage
	respHeaders, err := c.do(ctx, http.MethodGet, resource, q, headers, nil, &discard)
	if err != nil {
		return 0, err
	}
	return parseContentRangeTotal(respHeaders.Get("Content-Range"))
}

// Insert writes a single record and decodes the stored representation into out.
func (c *Client) Insert(ctx context.Context, resource string, record, out any) error {
	headers := map[string]string{
		"Prefer": "return=representation",
		"Accept": "application/vnd.pgrst.object+json",
	}
	_, err := c.do(ctx, http.MethodPost, resource, nil, headers, record, out)
	return err
}

// Update patches all rows matching the query.
func (c *Client) Update(ctx context.Context, resource string, q *Query, patch any) error {
	headers := map[string]string{"Prefer": "return=minimal"}
	_, err := c.do(ctx, http.MethodPatch, resource, q, headers, patch, nil)
	return err
}

// Delete removes all rows matching the query.
func (c *Client) Delete(ctx context.Context, resource string, q *Query) error {
	_, err := c.do(ctx, http.MethodDelete, resource, q, nil, nil, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, resource string, q *Query, headers map[string]string, body, out any) (http.Header, error) {
	endpoint := c.baseURL + "/" + resource
	query := ""
	if q != nil {
		query = q.Encode()
	}
	if query != "" {
		endpoint += "?" + query
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s record: %w", resource, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to build store request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	logger.StoreCall(method, resource, query)

	type roundTrip struct {
		status  int
		headers http.Header
	}

	result, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.httpc.Do(req)
		if err != nil {
			return nil, &Error{Status: 0, Message: err.Error()}
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			return nil, readError(resp)
		}

		if out != nil {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
				return nil, &Error{Status: resp.StatusCode, Message: fmt.Sprintf("failed to decode %s response: %v", resource, err)}
			}
		} else {
			io.Copy(io.Discard, resp.Body)
		}
		return roundTrip{status: resp.StatusCode, headers: resp.Header}, nil
	})

	if err != nil {
		status := 0
		var se *Error
		if errors.As(err, &se) {
			status = se.Status
		}
		logger.StoreResult(method, resource, status, err)
		return nil, err
	}
	rt := result.(roundTrip)
	logger.StoreResult(method, resource, rt.status, nil)
	return rt.headers, nil
}

// readError maps an error response onto *Error. The store reports failures as
// a JSON object with message and code fields.
func readError(resp *http.Response) *Error {
	se := &Error{Status: resp.StatusCode, Message: resp.Status}
	var body struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Message != "" {
			se.Message = body.Message
		}
		se.Code = body.Code
	}
	return se
}

// parseContentRangeTotal extracts the total from a "0-0/57" style header.
func parseContentRangeTotal(header string) (int, error) {
	_, totalPart, found := strings.Cut(header, "/")
	if !found {
		return 0, fmt.Errorf("store: malformed Content-Range header %q", header)
	}
	if totalPart == "*" {
		return 0, fmt.Errorf("store: Content-Range header %q carries no exact count", header)
	}
	total, err := strconv.Atoi(totalPart)
	if err != nil {
		return 0, fmt.Errorf("store: malformed Content-Range header %q", header)
	}
	return total, nil
}
