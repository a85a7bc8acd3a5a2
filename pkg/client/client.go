package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	v1 "github.com/pantryhq/shoplist/api/v1"
	"github.com/pantryhq/shoplist/internal/models"
	"github.com/pantryhq/shoplist/pkg/board"
	srvErrors "github.com/pantryhq/shoplist/pkg/errors"
)

const apiPrefix = "/api/v1"

// RequestEditorFn is called on every request before it is sent.
type RequestEditorFn func(ctx context.Context, req *http.Request) error

type ClientOption func(*Client)

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

func WithRequestEditorFn(fn RequestEditorFn) ClientOption {
	return func(c *Client) { c.editors = append(c.editors, fn) }
}

// WithMaxTries bounds the attempts made for transient failures. 1 disables retries.
func WithMaxTries(n uint) ClientOption {
	return func(c *Client) { c.maxTries = n }
}

// WithBackOff replaces the exponential backoff used between attempts.
func WithBackOff(fn func() backoff.BackOff) ClientOption {
	return func(c *Client) { c.newBackOff = fn }
}

// Client talks to the shoplist REST API. It implements board.Backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	editors    []RequestEditorFn
	maxTries   uint
	newBackOff func() backoff.BackOff
}

var _ board.Backend = (*Client)(nil)

func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("failed to initialize client: empty server url")
	}
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		maxTries:   3,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.maxTries == 0 {
		c.maxTries = 1
	}
	return c, nil
}

// ListItems returns the grouped list of unchecked items.
// GET /api/v1/items
func (c *Client) ListItems(ctx context.Context) (*models.ItemList, error) {
	var list v1.ItemList
	if err := c.do(ctx, http.MethodGet, "/items", nil, &list); err != nil {
		return nil, err
	}
	m := list.ToModel()
	return &m, nil
}

// CreateItem adds an item at the end of its container.
// POST /api/v1/items
func (c *Client) CreateItem(ctx context.Context, req models.CreateItemRequest) (*models.Item, error) {
	body := v1.CreateItemRequest{Name: req.Name, StoreId: req.StoreID, SectionId: req.SectionID}
	var item v1.Item
	if err := c.do(ctx, http.MethodPost, "/items", body, &item); err != nil {
		return nil, err
	}
	m := item.ToModel()
	return &m, nil
}

// MoveItem places an item at index of the container named by req.
// PUT /api/v1/items/{id}/move
func (c *Client) MoveItem(ctx context.Context, id int64, req models.MoveItemRequest) error {
	zap.S().Named("client").Debugw("move item", "item_id", id, "request", req)
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/items/%d/move", id), v1.NewMoveItemRequest(req), nil)
}

// CheckItem marks an item as bought.
// PUT /api/v1/items/{id}/checked
func (c *Client) CheckItem(ctx context.Context, id int64) error {
	return c.SetChecked(ctx, id, true)
}

func (c *Client) SetChecked(ctx context.Context, id int64, checked bool) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/items/%d/checked", id), v1.SetCheckedRequest{Checked: &checked}, nil)
}

// ListStores
// GET /api/v1/stores
func (c *Client) ListStores(ctx context.Context) ([]models.Store, error) {
	var stores []v1.Store
	if err := c.do(ctx, http.MethodGet, "/stores", nil, &stores); err != nil {
		return nil, err
	}
	out := make([]models.Store, 0, len(stores))
	for _, s := range stores {
		out = append(out, s.ToModel())
	}
	return out, nil
}

// CreateStore
// POST /api/v1/stores
func (c *Client) CreateStore(ctx context.Context, name string) (*models.Store, error) {
	var store v1.Store
	if err := c.do(ctx, http.MethodPost, "/stores", v1.NameRequest{Name: name}, &store); err != nil {
		return nil, err
	}
	m := store.ToModel()
	return &m, nil
}

// ListSections returns the sections of a store in display order.
// GET /api/v1/stores/{id}/sections
func (c *Client) ListSections(ctx context.Context, storeID int64) ([]models.Section, error) {
	var sections []v1.Section
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/stores/%d/sections", storeID), nil, &sections); err != nil {
		return nil, err
	}
	return sectionsToModel(sections), nil
}

// CreateSection
// POST /api/v1/stores/{id}/sections
func (c *Client) CreateSection(ctx context.Context, storeID int64, name string) (*models.Section, error) {
	var section v1.Section
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/stores/%d/sections", storeID), v1.NameRequest{Name: name}, &section); err != nil {
		return nil, err
	}
	m := section.ToModel()
	return &m, nil
}

// ReorderSections persists a new section order for a store.
// PUT /api/v1/stores/{id}/sections/reorder
func (c *Client) ReorderSections(ctx context.Context, storeID int64, ids []int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/stores/%d/sections/reorder", storeID), v1.ReorderSectionsRequest{Ids: ids}, nil)
}

// do sends one request, retrying server errors and network failures.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	log := zap.S().Named("client").With("method", method, "path", path)
	attempt := 0

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempt++
		err := c.send(ctx, method, path, payload, out)
		if err == nil {
			return struct{}{}, nil
		}
		if ctx.Err() != nil || !isRetryable(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		log.Debugw("request failed, retrying", "attempt", attempt, "error", err)
		return struct{}{}, err
	}, backoff.WithBackOff(c.newBackOff()), backoff.WithMaxTries(c.maxTries))

	return err
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, out any) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, reader)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for _, edit := range c.editors {
		if err := edit(ctx, req); err != nil {
			return err
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &networkError{err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		if out == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", errorMessage(resp), srvErrors.NewResourceNotFoundError(method+" "+path, nil))
	case http.StatusBadRequest:
		return srvErrors.NewValidationError("%s", errorMessage(resp))
	case http.StatusConflict:
		return srvErrors.NewConflictError("%s", errorMessage(resp))
	default:
		return srvErrors.NewUnexpectedStatusError(resp.Status, resp.StatusCode)
	}
}

type networkError struct {
	err error
}

func (e *networkError) Error() string { return e.err.Error() }

func (e *networkError) Unwrap() error { return e.err }

func isRetryable(err error) bool {
	var netErr *networkError
	return errors.As(err, &netErr) || srvErrors.IsTransientError(err)
}

func errorMessage(resp *http.Response) string {
	var body v1.Error
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
		return resp.Status
	}
	return body.Error
}

func sectionsToModel(sections []v1.Section) []models.Section {
	out := make([]models.Section, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.ToModel())
	}
	return out
}
