package nutrientdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const defaultBaseURL = "https://trackapi.nutritionix.com/v2"

// ErrNotFound is returned when the provider has no nutrient data for a food
// name. Callers treat it as an expected outcome, not a transport failure.
var ErrNotFound = errors.New("food not found")

// Nutrients is the normalized lookup result. Loosely-typed provider responses
// are mapped onto this one shape at the boundary so the rest of the service
// never deals with fallback field chains.
type Nutrients struct {
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	ProteinG    float64 `json:"protein_g"`
	CarbsG      float64 `json:"carbs_g"`
	FatG        float64 `json:"fat_g"`
	ServingQty  float64 `json:"serving_qty"`
	ServingUnit string  `json:"serving_unit"`
}

// Serving renders the serving description embedded into meal records.
func (n Nutrients) Serving() string {
	if n.ServingQty == 0 || n.ServingUnit == "" {
		return ""
	}
	return fmt.Sprintf("%g %s", n.ServingQty, n.ServingUnit)
}

type Client struct {
	appID      string
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient reads Nutritionix credentials from the environment. The client
// never retries; backoff is the caller's concern.
func NewClient() *Client {
	return &Client{
		appID:   os.Getenv("NUTRITIONIX_APP_ID"),
		apiKey:  os.Getenv("NUTRITIONIX_API_KEY"),
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 12 * time.Second,
		},
	}
}

// NewClientWithBase is used by tests to point the client at a stub server.
func NewClientWithBase(baseURL, appID, apiKey string) *Client {
	return &Client{
		appID:      appID,
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 12 * time.Second},
	}
}

type instantResponse struct {
	Common []struct {
		FoodName string `json:"food_name"`
	} `json:"common"`
}

// Search returns candidate food names for a query prefix.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/search/instant?query=%s", c.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("food search failed with status %d", resp.StatusCode)
	}

	var parsed instantResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	names := make([]string, 0, len(parsed.Common))
	for _, item := range parsed.Common {
		names = append(names, item.FoodName)
	}
	return names, nil
}

type nutrientsResponse struct {
	Foods []struct {
		FoodName    string  `json:"food_name"`
		Calories    float64 `json:"nf_calories"`
		ProteinG    float64 `json:"nf_protein"`
		CarbsG      float64 `json:"nf_total_carbohydrate"`
		FatG        float64 `json:"nf_total_fat"`
		ServingQty  float64 `json:"serving_qty"`
		ServingUnit string  `json:"serving_unit"`
	} `json:"foods"`
}

// Lookup resolves a natural-language food name to a nutrient record.
func (c *Client) Lookup(ctx context.Context, foodName string) (Nutrients, error) {
	payload, err := json.Marshal(map[string]string{"query": foodName})
	if err != nil {
		return Nutrients{}, fmt.Errorf("marshal lookup payload: %w", err)
	}

	endpoint := c.baseURL + "/natural/nutrients"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return Nutrients{}, fmt.Errorf("create lookup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Nutrients{}, fmt.Errorf("execute lookup request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Nutrients{}, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return Nutrients{}, fmt.Errorf("nutrient lookup failed with status %d", resp.StatusCode)
	}

	var parsed nutrientsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Nutrients{}, fmt.Errorf("decode lookup response: %w", err)
	}
	if len(parsed.Foods) == 0 {
		return Nutrients{}, ErrNotFound
	}

	f := parsed.Foods[0]
	return Nutrients{
		Name:        f.FoodName,
		Calories:    f.Calories,
		ProteinG:    f.ProteinG,
		CarbsG:      f.CarbsG,
		FatG:        f.FatG,
		ServingQty:  f.ServingQty,
		ServingUnit: f.ServingUnit,
	}, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("x-app-id", c.appID)
	req.Header.Set("x-app-key", c.apiKey)
}
