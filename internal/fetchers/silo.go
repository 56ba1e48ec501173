package fetchers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"silomet/internal/silo"

	"github.com/go-resty/resty/v2"
)

// SILOClient fetches raw climate data from the SILO Data Drill endpoint.
// The response is returned as text; parsing and normalization live in the
// silo package.
type SILOClient struct {
	client   *resty.Client
	baseURL  string
	username string
	password string
}

// NewSILOClient creates a new SILO Data Drill client
func NewSILOClient(baseURL, username, password string) *SILOClient {
	client := resty.New()
	client.SetTimeout(30 * time.Second)

	return &SILOClient{
		client:   client,
		baseURL:  baseURL,
		username: username,
		password: password,
	}
}

// Fetch retrieves the raw Data Drill payload for a point and year range.
// Coordinates are rounded to 4 decimals; the requested window always spans
// whole years (1 Jan start to 31 Dec finish).
func (c *SILOClient) Fetch(ctx context.Context, lat, lon float64, startYear, endYear int, format silo.Format) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format":   string(format),
			"lat":      fmt.Sprintf("%.4f", lat),
			"lon":      fmt.Sprintf("%.4f", lon),
			"start":    fmt.Sprintf("%d0101", startYear),
			"finish":   fmt.Sprintf("%d1231", endYear),
			"username": c.username,
			"password": c.password,
		}).
		Get(c.baseURL + "/DataDrillDataset.php")

	if err != nil {
		return "", fmt.Errorf("failed to fetch SILO data: %w", err)
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return "", &AuthenticationError{}
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("SILO API returned status %d", resp.StatusCode())
	}

	body := string(resp.Body())

	// SILO reports bad credentials in a 200 response body.
	lower := strings.ToLower(body)
	if strings.Contains(lower, "username") && strings.Contains(lower, "password") {
		if strings.Contains(lower, "invalid") || strings.Contains(lower, "error") {
			return "", &AuthenticationError{}
		}
	}

	return body, nil
}
