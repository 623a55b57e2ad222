package postage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Client talks to the letter-printing provider that turns a postal dispatch
// into a physically mailed letter.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) SendLetter(ctx context.Context, input SendLetterInput) error {
	if c.apiKey == "" {
		log.Println("⚠️ Postage: API key not configured")
		return fmt.Errorf("postage provider not configured")
	}

	payload, _ := json.Marshal(input)
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/letters", bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("postage request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("postage provider returned %d - %s", resp.StatusCode, string(body))
	}

	var result sendLetterResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return err
	}

	log.Printf("📮 Postage: letter %s accepted (%s)", result.ID, result.Status)

	return nil
}
