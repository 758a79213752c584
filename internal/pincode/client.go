package pincode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	apperrors "karsamrit/internal/errors"
)

// Client looks up Indian postal pincodes against the public postal API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type Lookup struct {
	City       string `json:"city"`
	State      string `json:"state"`
	PostOffice string `json:"postOffice"`
}

// upstream response shape of api.postalpincode.in
type upstreamResult struct {
	Status     string `json:"Status"`
	PostOffice []struct {
		Name     string `json:"Name"`
		District string `json:"District"`
		State    string `json:"State"`
	} `json:"PostOffice"`
}

func (c *Client) Lookup(ctx context.Context, pin string) (*Lookup, error) {
	url := fmt.Sprintf("%s/pincode/%s", c.baseURL, pin)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building pincode request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling pincode API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pincode API returned status %d", resp.StatusCode)
	}

	var results []upstreamResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decoding pincode response: %w", err)
	}

	if len(results) == 0 || results[0].Status != "Success" || len(results[0].PostOffice) == 0 {
		return nil, apperrors.NewNotFoundError("Pincode not found")
	}

	po := results[0].PostOffice[0]
	return &Lookup{
		City:       po.District,
		State:      po.State,
		PostOffice: po.Name,
	}, nil
}
