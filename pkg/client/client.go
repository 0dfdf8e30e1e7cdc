package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	v1 "github.com/kubev2v/forkpool/api/v1"
	serviceErrs "github.com/kubev2v/forkpool/pkg/errors"
)

const apiPrefix = "/api/v1"

// Client talks to a forkpool server's /api/v1.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("failed to initialize forkpool client: %v", err)
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// GetPool returns the scheduler snapshot
// GET /api/v1/pool
func (c *Client) GetPool(ctx context.Context) (*v1.PoolStatus, error) {
	var pool v1.PoolStatus
	if err := c.do(ctx, http.MethodGet, "/pool", nil, http.StatusOK, &pool); err != nil {
		return nil, err
	}
	return &pool, nil
}

// StartRun executes a run and waits for it
// POST /api/v1/runs
func (c *Client) StartRun(ctx context.Context, req v1.StartRunRequest) (*v1.Run, error) {
	var run v1.Run
	if err := c.do(ctx, http.MethodPost, "/runs", req, http.StatusCreated, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// StartRunAsync starts a run and returns the bench status right away
// POST /api/v1/runs?async=true
func (c *Client) StartRunAsync(ctx context.Context, req v1.StartRunRequest) (*v1.BenchStatus, error) {
	var status v1.BenchStatus
	if err := c.do(ctx, http.MethodPost, "/runs?async=true", req, http.StatusAccepted, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ListRuns returns one page of recorded runs
// GET /api/v1/runs
func (c *Client) ListRuns(ctx context.Context, params v1.ListRunsParams) (*v1.RunListResponse, error) {
	q := url.Values{}
	for _, w := range params.Workload {
		q.Add("workload", w)
	}
	if params.Page != nil {
		q.Set("page", strconv.Itoa(*params.Page))
	}
	if params.PageSize != nil {
		q.Set("pageSize", strconv.Itoa(*params.PageSize))
	}

	path := "/runs"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp v1.RunListResponse
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetRun returns one recorded run
// GET /api/v1/runs/{id}
func (c *Client) GetRun(ctx context.Context, id string) (*v1.Run, error) {
	var run v1.Run
	if err := c.do(ctx, http.MethodGet, "/runs/"+url.PathEscape(id), nil, http.StatusOK, &run); err != nil {
		if serviceErrs.IsResourceNotFoundError(err) {
			return nil, serviceErrs.NewRunNotFoundError(id)
		}
		return nil, err
	}
	return &run, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, want int, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	zap.S().Named("client").Debugw("request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == want {
		return json.NewDecoder(resp.Body).Decode(out)
	}

	var apiErr v1.Error
	_ = json.NewDecoder(resp.Body).Decode(&apiErr)

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return serviceErrs.NewInvalidArgumentError("request", apiErr.Error)
	case http.StatusNotFound:
		return serviceErrs.NewResourceNotFoundError("resource", path)
	case http.StatusConflict:
		return serviceErrs.NewRunInProgressError()
	default:
		return fmt.Errorf("%s %s failed: %s: %s", method, path, resp.Status, apiErr.Error)
	}
}
