package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go-radial-arena/internal/config"
)

const scoresTable = "scores"

// RESTClient talks to a PostgREST-style scores table.
type RESTClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewRESTClient builds a client for baseURL (for example
// https://project.supabase.co/rest/v1). An empty baseURL yields a client
// whose calls all fail with ErrDisabled.
func NewRESTClient(baseURL, apiKey string, httpClient *http.Client) *RESTClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: RequestTimeout}
	}
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    httpClient,
	}
}

func (c *RESTClient) Enabled() bool { return c.baseURL != "" }

func (c *RESTClient) TopScores(ctx context.Context, mode config.GameMode, limit int) ([]Entry, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	q := url.Values{}
	q.Set("select", "player_name,score,mode,run_id,created_at")
	q.Set("mode", "eq."+string(mode))
	q.Set("order", "score.desc")
	q.Set("limit", strconv.Itoa(limit))

	resp, err := c.do(ctx, http.MethodGet, q, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top scores: %w", err)
	}
	defer resp.Body.Close()

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode top scores: %w", err)
	}
	return entries, nil
}

func (c *RESTClient) Submit(ctx context.Context, e Entry) error {
	if !c.Enabled() {
		return ErrDisabled
	}
	e.PlayerName = SanitizeName(e.PlayerName)
	body, err := json.Marshal(struct {
		PlayerName string          `json:"player_name"`
		Score      int             `json:"score"`
		Mode       config.GameMode `json:"mode"`
		RunID      string          `json:"run_id,omitempty"`
	}{e.PlayerName, e.Score, e.Mode, e.RunID})
	if err != nil {
		return fmt.Errorf("failed to encode score: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, nil, bytes.NewReader(body), map[string]string{
		"Content-Type": "application/json",
		"Prefer":       "return=minimal",
	})
	if err != nil {
		return fmt.Errorf("failed to submit score: %w", err)
	}
	resp.Body.Close()
	slog.Info("score submitted", "player", e.PlayerName, "score", e.Score, "mode", e.Mode)
	return nil
}

// Rank asks for an exact count of better scores in the mode and returns
// count+1. The count comes from the Content-Range header.
func (c *RESTClient) Rank(ctx context.Context, score int, mode config.GameMode) (int, error) {
	if !c.Enabled() {
		return 0, ErrDisabled
	}
	q := url.Values{}
	q.Set("select", "score")
	q.Set("mode", "eq."+string(mode))
	q.Set("score", "gt."+strconv.Itoa(score))

	resp, err := c.do(ctx, http.MethodGet, q, nil, map[string]string{
		"Prefer":     "count=exact",
		"Range-Unit": "items",
		"Range":      "0-0",
	})
	if err != nil {
		return 0, fmt.Errorf("failed to fetch rank: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	count, err := parseContentRangeTotal(resp.Header.Get("Content-Range"))
	if err != nil {
		return 0, fmt.Errorf("failed to fetch rank: %w", err)
	}
	return count + 1, nil
}

func (c *RESTClient) do(ctx context.Context, method string, q url.Values, body io.Reader, headers map[string]string) (*http.Response, error) {
	u := c.baseURL + "/" + scoresTable
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		slog.Warn("leaderboard request rejected", "method", method, "status", resp.StatusCode)
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
	return resp, nil
}

// StatusError is a non-2xx reply from the backend.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("leaderboard: unexpected status %d", e.Code)
	}
	return fmt.Sprintf("leaderboard: unexpected status %d: %s", e.Code, e.Body)
}

// parseContentRangeTotal reads the total from "0-0/42" or "*/0".
func parseContentRangeTotal(h string) (int, error) {
	i := strings.LastIndexByte(h, '/')
	if i < 0 {
		return 0, fmt.Errorf("malformed content-range %q", h)
	}
	total := h[i+1:]
	if total == "*" {
		return 0, fmt.Errorf("content-range %q has no total", h)
	}
	n, err := strconv.Atoi(total)
	if err != nil {
		return 0, fmt.Errorf("malformed content-range %q: %w", h, err)
	}
	return n, nil
}
