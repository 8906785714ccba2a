// Package service is the HTTP client for the booking backend. The backend
// owns seat locks, booking lifecycle and payment settlement; this client
// mirrors its contract and never re-implements any of it.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"moviebook-cli/auth"
	"moviebook-cli/model"
)

const defaultTimeout = 12 * time.Second

// Client wraps HTTP access to the booking backend. No automatic retries:
// every retry in this application is a user-initiated re-click.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     auth.TokenProvider
}

// APIError is returned when the backend responds with a non-2xx status.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	if e == nil {
		return "backend api error"
	}
	return fmt.Sprintf("backend api error: %s: %s", e.Status, e.Body)
}

// ErrNotJSON marks a 2xx response whose body is not JSON. Read endpoints
// treat it the same as a failed fetch: no data, no parse attempt.
var ErrNotJSON = errors.New("response is not json")

// IsNotFound reports whether the error represents a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsUnauthorized reports a 401/403, meaning the token is missing or stale.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// NewClient creates a backend client rooted at baseURL. If httpClient is
// nil, a default client with a request timeout is used. tokens supplies the
// Authorization header; a nil provider sends unauthenticated requests.
func NewClient(httpClient *http.Client, baseURL string, tokens auth.TokenProvider) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
	}
}

// GetMovies returns the full movie catalog.
func (c *Client) GetMovies(ctx context.Context) ([]model.Movie, error) {
	var movies []model.Movie
	if err := c.getJSON(ctx, c.baseURL+"/movies", &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// GetMovie fetches one movie's metadata.
func (c *Client) GetMovie(ctx context.Context, movieID string) (model.Movie, error) {
	if movieID == "" {
		return model.Movie{}, errors.New("movie id is required")
	}
	endpoint := fmt.Sprintf("%s/movies/%s", c.baseURL, url.PathEscape(movieID))
	var movie model.Movie
	if err := c.getJSON(ctx, endpoint, &movie); err != nil {
		return model.Movie{}, err
	}
	return movie, nil
}

// GetShowsByMovie lists the shows scheduled for a movie.
func (c *Client) GetShowsByMovie(ctx context.Context, movieID string) ([]model.Show, error) {
	if movieID == "" {
		return nil, errors.New("movie id is required")
	}
	endpoint := fmt.Sprintf("%s/movies/%s/shows", c.baseURL, url.PathEscape(movieID))
	var shows []model.Show
	if err := c.getJSON(ctx, endpoint, &shows); err != nil {
		return nil, err
	}
	return shows, nil
}

// GetShow fetches one show with its pricing fields.
func (c *Client) GetShow(ctx context.Context, showID string) (model.Show, error) {
	if showID == "" {
		return model.Show{}, errors.New("show id is required")
	}
	endpoint := fmt.Sprintf("%s/movies/shows/%s", c.baseURL, url.PathEscape(showID))
	var show model.Show
	if err := c.getJSON(ctx, endpoint, &show); err != nil {
		return model.Show{}, err
	}
	return show, nil
}

// GetSeatStatus fetches the booked/locked seat ids for a show.
func (c *Client) GetSeatStatus(ctx context.Context, showID string) (model.SeatStatus, error) {
	if showID == "" {
		return model.SeatStatus{}, errors.New("show id is required")
	}
	endpoint := fmt.Sprintf("%s/bookings/show/%s/seats/status", c.baseURL, url.PathEscape(showID))
	var status model.SeatStatus
	if err := c.getJSON(ctx, endpoint, &status); err != nil {
		return model.SeatStatus{}, err
	}
	return status, nil
}

// GetMyBookings lists the authenticated user's bookings.
func (c *Client) GetMyBookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := c.getJSON(ctx, c.baseURL+"/bookings/my", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking submits a booking and returns the created pending booking.
// Sent exactly once per call; on failure the caller returns to seat
// selection and any retry is an explicit re-submit.
func (c *Client) CreateBooking(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error) {
	var created model.Booking
	if err := c.sendJSON(ctx, http.MethodPost, c.baseURL+"/bookings/create", req, &created); err != nil {
		return model.Booking{}, err
	}
	return created, nil
}

// CancelBooking cancels a pending booking.
func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	if bookingID == "" {
		return errors.New("booking id is required")
	}
	endpoint := fmt.Sprintf("%s/bookings/%s/cancel", c.baseURL, url.PathEscape(bookingID))
	return c.sendJSON(ctx, http.MethodPut, endpoint, nil, nil)
}

// Pay settles a pending booking.
func (c *Client) Pay(ctx context.Context, req model.PaymentRequest) error {
	return c.sendJSON(ctx, http.MethodPost, c.baseURL+"/payment/pay", req, nil)
}

// SignIn exchanges credentials for a bearer token.
func (c *Client) SignIn(ctx context.Context, email string, password string) (string, error) {
	var out model.SignInResponse
	req := model.SignInRequest{Email: email, Password: password}
	if err := c.sendJSON(ctx, http.MethodPost, c.baseURL+"/auth/signin", req, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", errors.New("signin response carries no token")
	}
	return out.Token, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *Client) sendJSON(ctx context.Context, method string, endpoint string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	return c.do(ctx, method, endpoint, reader, out)
}

func (c *Client) do(ctx context.Context, method string, endpoint string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", token)
		}
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 8<<10))
		return &APIError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Endpoint:   endpoint,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if out == nil {
		return nil
	}

	// Some gateways answer error pages with 200 + text/html; gate on
	// content type before parsing instead of failing inside the decoder.
	contentType := res.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "application/json") {
		return fmt.Errorf("%w: %s from %s", ErrNotJSON, contentType, endpoint)
	}

	dec := json.NewDecoder(res.Body)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response from %s: %w", endpoint, err)
	}
	return nil
}
