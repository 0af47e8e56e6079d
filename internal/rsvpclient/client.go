// Package rsvpclient talks to the rsvp API. Listings are cached until the
// client itself submits a new rsvp or the cache is explicitly invalidated.
package rsvpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/birthday-invite/gaurav-dawande/internal/webserver/model"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

const rsvpsPath = "/api/rsvps"

var (
	ErrFetchFailed  = errors.New("failed to fetch rsvps")
	ErrSubmitFailed = errors.New("failed to submit rsvp")
)

// Candidate is an rsvp as it is sent to the server, before it gets an id.
type Candidate struct {
	Name       string  `json:"name"`
	Email      *string `json:"email,omitempty"`
	GuestCount int     `json:"guestCount"`
	Status     string  `json:"status,omitempty"`
	Message    *string `json:"message,omitempty"`
}

type Client struct {
	baseURL string
	http    *fasthttp.Client
	timeout time.Duration

	mu     sync.Mutex
	cached []model.Rsvp
}

type Option func(*Client)

// WithDial replaces the function used to open connections to the server.
func WithDial(dial func(addr string) (net.Conn, error)) Option {
	return func(c *Client) {
		c.http.Dial = dial
	}
}

// WithTimeout sets how long a request may take when the context carries no deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http: &fasthttp.Client{
			Name: "rsvpclient",
		},
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List returns every rsvp stored on the server, from the cache if available.
func (c *Client) List(ctx context.Context) ([]model.Rsvp, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil {
		return c.cached, nil
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + rsvpsPath)
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := c.do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFetchFailed, err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("%w: server answered %d", ErrFetchFailed, resp.StatusCode())
	}

	rsvps := []model.Rsvp{}
	if err := json.Unmarshal(resp.Body(), &rsvps); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFetchFailed, err)
	}
	c.cached = rsvps
	return rsvps, nil
}

// Create submits candidate. A rejected submission is returned as a
// *model.ValidationError.
func (c *Client) Create(ctx context.Context, candidate Candidate) (model.Rsvp, error) {
	payload, err := json.Marshal(candidate)
	if err != nil {
		return model.Rsvp{}, fmt.Errorf("%w: %s", ErrSubmitFailed, err)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + rsvpsPath)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType(fiber.MIMEApplicationJSON)
	req.SetBody(payload)

	if err := c.do(ctx, req, resp); err != nil {
		return model.Rsvp{}, fmt.Errorf("%w: %s", ErrSubmitFailed, err)
	}

	switch resp.StatusCode() {
	case fasthttp.StatusCreated:
		var rsvp model.Rsvp
		if err := json.Unmarshal(resp.Body(), &rsvp); err != nil {
			return model.Rsvp{}, fmt.Errorf("%w: %s", ErrSubmitFailed, err)
		}
		c.Invalidate()
		return rsvp, nil
	case fasthttp.StatusBadRequest:
		validationErr := &model.ValidationError{}
		if err := json.Unmarshal(resp.Body(), validationErr); err != nil {
			return model.Rsvp{}, fmt.Errorf("%w: %s", ErrSubmitFailed, err)
		}
		return model.Rsvp{}, validationErr
	default:
		return model.Rsvp{}, fmt.Errorf("%w: server answered %d", ErrSubmitFailed, resp.StatusCode())
	}
}

// Invalidate drops the cached list so the next List call hits the server.
func (c *Client) Invalidate() {
	c.mu.Lock()
	c.cached = nil
	c.mu.Unlock()
}

func (c *Client) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(c.timeout)
	}
	return c.http.DoDeadline(req, resp, deadline)
}
