package bart

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mschuldt/bart-mode/internal/board"
)

const defaultBaseURL = "http://api.bart.gov/api"

// PublicKey is the key BART publishes for public, rate-limited use.
const PublicKey = "MW9S-E7SL-26DU-VV8V"

// ETDURL builds the estimated-departures request for a station code. Pure
// string construction; station codes are validated by the config layer
// before they get here.
func ETDURL(baseURL, key, orig string) string {
	q := url.Values{}
	q.Set("key", key)
	q.Set("orig", orig)
	q.Set("cmd", "etd")
	return baseURL + "/etd.aspx?" + q.Encode()
}

// Client is a BART real-time API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	key        string
}

// NewClient creates a client using the given API key.
func NewClient(key string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		key:        key,
	}
}

// NewClientWithBaseURL is NewClient against a non-default endpoint, for
// tests pointed at a local server.
func NewClientWithBaseURL(key, baseURL string) *Client {
	c := NewClient(key)
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

// EstimatedDepartures fetches and parses the departure board for a station.
func (c *Client) EstimatedDepartures(ctx context.Context, orig string) (*board.Board, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ETDURL(c.baseURL, c.key, orig), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return ParseETD(data)
}

// ParseETD converts a raw ETD response body into a departure board.
func ParseETD(data []byte) (*board.Board, error) {
	var resp etdResponse
	if err := xml.Unmarshal(data, &resp); err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}

	if len(resp.Stations) == 0 {
		return nil, &ParseError{
			Reason:     "no station element in response",
			APIMessage: strings.TrimSpace(resp.Message.Error.Text),
		}
	}

	station := resp.Stations[0]
	b := &board.Board{
		StationName:  station.Name,
		StationAbbr:  station.Abbreviation,
		AsOf:         strings.TrimSpace(resp.Date + " " + resp.Time),
		Destinations: make([]board.Destination, 0, len(station.Destinations)),
	}

	for _, dst := range station.Destinations {
		d := board.Destination{
			Name:         dst.Destination,
			Abbreviation: dst.Abbreviation,
			Estimates:    make([]board.Estimate, 0, len(dst.Estimates)),
		}
		for _, est := range dst.Estimates {
			d.Estimates = append(d.Estimates, board.Estimate{
				Minutes:   est.Minutes,
				Platform:  est.Platform,
				Direction: est.Direction,
				Cars:      est.Length,
				Color:     est.Color,
				HexColor:  est.HexColor,
				BikeFlag:  est.BikeFlag != 0,
				Delay:     est.Delay,
			})
		}
		b.Destinations = append(b.Destinations, d)
	}

	return b, nil
}
