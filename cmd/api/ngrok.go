package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	ngrokAPIBase       = "http://ngrok:4040"
	ngrokAttempts      = 10
	ngrokRetryInterval = 3 * time.Second
)

// ngrokTunnels matches the /api/tunnels response of the ngrok agent API.
type ngrokTunnels struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// detectNgrokURL returns the public URL of the local ngrok agent, preferring
// https. ngrok may still be starting, so it retries.
func detectNgrokURL(ctx context.Context, apiBase string) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= ngrokAttempts; attempt++ {
		url, err := fetchTunnelURL(ctx, client, apiBase+"/api/tunnels")
		if err == nil {
			return url, nil
		}
		lastErr = err

		if attempt < ngrokAttempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(ngrokRetryInterval):
			}
		}
	}
	return "", fmt.Errorf("ngrok not ready after %d attempts: %w", ngrokAttempts, lastErr)
}

func fetchTunnelURL(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnels
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("decoding tunnels: %w", err)
	}
	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}
	return "", fmt.Errorf("no active tunnels")
}
