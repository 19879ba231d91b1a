package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/bookshop/internal/client/models"
	"github.com/dmitrijs2005/bookshop/internal/common"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type booksEnvelope[T any] struct {
	Books []T `json:"books"`
}

type messageEnvelope struct {
	Message string `json:"message"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginEnvelope struct {
	Token string `json:"token"`
}

// Token returns the session token obtained by the last successful Login.
func (c *HTTPClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *HTTPClient) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, false, nil)
}

func (c *HTTPClient) ListBooks(ctx context.Context) ([]models.BookSummary, error) {
	var out booksEnvelope[models.BookSummary]
	if err := c.do(ctx, http.MethodGet, "/books", nil, false, &out); err != nil {
		return nil, err
	}
	return out.Books, nil
}

func (c *HTTPClient) GetByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	var out models.Book
	if err := c.do(ctx, http.MethodGet, "/books/isbn/"+url.PathEscape(isbn), nil, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) FindByAuthor(ctx context.Context, author string) ([]models.Book, error) {
	var out booksEnvelope[models.Book]
	if err := c.do(ctx, http.MethodGet, "/books/author/"+url.PathEscape(author), nil, false, &out); err != nil {
		return nil, err
	}
	return out.Books, nil
}

func (c *HTTPClient) FindByTitle(ctx context.Context, title string) ([]models.Book, error) {
	var out booksEnvelope[models.Book]
	if err := c.do(ctx, http.MethodGet, "/books/title/"+url.PathEscape(title), nil, false, &out); err != nil {
		return nil, err
	}
	return out.Books, nil
}

func (c *HTTPClient) GetReviews(ctx context.Context, isbn string) (*models.Reviews, error) {
	var out models.Reviews
	if err := c.do(ctx, http.MethodGet, "/books/review/"+url.PathEscape(isbn), nil, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/register", credentials{Username: username, Password: password}, false, nil)
}

// Login obtains a session token and keeps it for the review calls.
func (c *HTTPClient) Login(ctx context.Context, username, password string) error {
	var out loginEnvelope
	if err := c.do(ctx, http.MethodPost, "/login", credentials{Username: username, Password: password}, false, &out); err != nil {
		return err
	}

	c.mu.Lock()
	c.token = out.Token
	c.mu.Unlock()

	return nil
}

func (c *HTTPClient) PutReview(ctx context.Context, isbn, text string) (*models.ReviewMutation, error) {
	var out models.ReviewMutation
	body := map[string]string{"review": text}
	if err := c.do(ctx, http.MethodPut, "/auth/review/"+url.PathEscape(isbn), body, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteReview(ctx context.Context, isbn string) (*models.ReviewMutation, error) {
	var out models.ReviewMutation
	if err := c.do(ctx, http.MethodDelete, "/auth/review/"+url.PathEscape(isbn), nil, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do sends one request. A transport failure wraps ErrUnavailable; a non-2xx
// answer becomes *APIError.
func (c *HTTPClient) do(ctx context.Context, method, path string, in any, withToken bool, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if withToken {
		if token := c.Token(); token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var m messageEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&m)
		return &APIError{StatusCode: resp.StatusCode, Message: m.Message}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
