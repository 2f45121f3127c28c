// Package football is a client of the football-data.org v4 REST API,
// limited to the calls needed for a single club: its matches, its league table and its squad.
package football

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// match status filters accepted by the api
const (
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
	StatusFinished  = "FINISHED"
)

const defaultMatchLimit = 10

// ErrStatus is returned for non-2xx responses
var ErrStatus = errors.New("unexpected status code")

// errNoRetry stops the retrier on failures which won't change on the next attempt
var errNoRetry = errors.New("no retry")

// Client calls the api on behalf of one team and one competition
type Client struct {
	httpClient    *http.Client
	baseURL       string
	token         string
	teamID        int
	competitionID int
	retrier       *repeater.Repeater
}

// Params of the client
type Params struct {
	BaseURL       string
	Token         string
	TeamID        int
	CompetitionID int
	Timeout       time.Duration
	Retries       int           // attempts for transport errors and 5xx responses, 1 if not set
	RetryDelay    time.Duration // initial backoff delay, 100ms if not set
}

// NewClient makes an api client
func NewClient(params Params) *Client {
	if params.Retries <= 0 {
		params.Retries = 1
	}
	if params.RetryDelay <= 0 {
		params.RetryDelay = 100 * time.Millisecond
	}
	return &Client{
		httpClient:    &http.Client{Timeout: params.Timeout},
		baseURL:       strings.TrimRight(params.BaseURL, "/") + "/",
		token:         params.Token,
		teamID:        params.TeamID,
		competitionID: params.CompetitionID,
		retrier:       repeater.NewBackoff(params.Retries, params.RetryDelay, repeater.WithMaxDelay(2*time.Second)),
	}
}

// Matches returns matches of the team filtered by status, limit <= 0 means the default of 10
func (c *Client) Matches(ctx context.Context, status string, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = defaultMatchLimit
	}
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	q.Set("limit", strconv.Itoa(limit))

	var resp matchesResponse
	if err := c.get(ctx, fmt.Sprintf("teams/%d/matches", c.teamID), q, &resp); err != nil {
		return nil, fmt.Errorf("get %s matches: %w", status, err)
	}
	return resp.Matches, nil
}

// Standings returns all tables of the competition
func (c *Client) Standings(ctx context.Context) ([]StandingTable, error) {
	var resp standingsResponse
	if err := c.get(ctx, fmt.Sprintf("competitions/%d/standings", c.competitionID), nil, &resp); err != nil {
		return nil, fmt.Errorf("get standings: %w", err)
	}
	return resp.Standings, nil
}

// Squad returns players of the team
func (c *Client) Squad(ctx context.Context) ([]Player, error) {
	var resp teamResponse
	if err := c.get(ctx, fmt.Sprintf("teams/%d", c.teamID), nil, &resp); err != nil {
		return nil, fmt.Errorf("get squad: %w", err)
	}
	return resp.Squad, nil
}

// get performs GET request to the api path and decodes json response into res.
// Transport errors and 5xx responses are retried with backoff, anything else fails right away.
func (c *Client) get(ctx context.Context, path string, q url.Values, res any) error {
	var lastErr error
	err := c.retrier.Do(ctx, func() error {
		retry, err := c.request(ctx, path, q, res)
		lastErr = err
		if err != nil && !retry {
			return errNoRetry
		}
		return err
	}, errNoRetry)
	if lastErr != nil {
		return lastErr
	}
	return err
}

// request makes a single api call, retry reports whether the failure is worth another attempt
func (c *Client) request(ctx context.Context, path string, q url.Values, res any) (retry bool, err error) {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Auth-Token", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ctx.Err() == nil, fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return resp.StatusCode >= 500, fmt.Errorf("%w: %d, %s", ErrStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(res); err != nil {
		return false, fmt.Errorf("decode %s: %w", path, err)
	}
	return false, nil
}
