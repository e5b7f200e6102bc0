package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cinelog/internal/library"
)

// payload models the OMDb by-title response. OMDb reports misses with a
// 200 status and Response == "False".
type payload struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	IMDBRating string `json:"imdbRating"`
	Poster     string `json:"Poster"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

// Client resolves movie titles against the OMDb API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ library.Lookup = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates an OMDb client.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("omdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("omdb base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Resolve looks up a title and reports the tagged found/not-found outcome.
// Transport and protocol failures are returned as errors tagged with
// library.ErrTransport.
func (c *Client) Resolve(ctx context.Context, title string) (library.Resolution, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return library.Resolution{}, errors.New("title must not be empty")
	}

	endpoint, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return library.Resolution{}, fmt.Errorf("%w: parse omdb url: %w", library.ErrTransport, err)
	}
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("t", title)
	params.Set("type", "movie")
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return library.Resolution{}, fmt.Errorf("%w: build request: %w", library.ErrTransport, err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return library.Resolution{}, fmt.Errorf("%w: execute request (latency=%v): %w", library.ErrTransport, latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return library.Resolution{}, fmt.Errorf("%w: omdb returned %d (latency=%v)", library.ErrTransport, resp.StatusCode, latency)
	}

	var body payload
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return library.Resolution{}, fmt.Errorf("%w: decode omdb response: %w", library.ErrTransport, err)
	}

	if !strings.EqualFold(body.Response, "True") {
		return library.Resolution{}, nil
	}

	movie, err := body.toMovie()
	if err != nil {
		return library.Resolution{}, fmt.Errorf("%w: %w", library.ErrTransport, err)
	}
	return library.Resolution{Found: true, Movie: movie}, nil
}

func (p payload) toMovie() (library.Movie, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return library.Movie{}, errors.New("omdb response missing title")
	}
	year, err := parseYear(p.Year)
	if err != nil {
		return library.Movie{}, err
	}
	return library.Movie{
		Title:     title,
		Year:      year,
		Rating:    parseRating(p.IMDBRating),
		PosterURL: parsePoster(p.Poster),
	}, nil
}

// parseYear accepts plain years and range forms such as "2010-2013",
// keeping the first year.
func parseYear(value string) (int, error) {
	value = strings.TrimSpace(value)
	end := 0
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("omdb response has unusable year %q", value)
	}
	year, err := strconv.Atoi(value[:end])
	if err != nil {
		return 0, fmt.Errorf("parse year %q: %w", value, err)
	}
	return year, nil
}

// parseRating treats OMDb's "N/A" (and anything else unparsable) as an
// unrated 0.0 rather than failing the whole add.
func parseRating(value string) float64 {
	rating, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return rating
}

func parsePoster(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "N/A") {
		return ""
	}
	return value
}
