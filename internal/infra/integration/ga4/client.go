package ga4

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	defaultBaseURL = "https://analyticsdata.googleapis.com/v1beta"
	readonlyScope  = "https://www.googleapis.com/auth/analytics.readonly"
)

// The report shape is fixed: the dashboard always asks for the same
// dimensions and metrics over a rolling 30-day window.
var (
	reportDimensions = []string{
		"date", "country", "city", "deviceCategory", "platform",
		"sessionSource", "sessionMedium", "landingPagePlusQueryString",
	}
	reportMetrics = []string{
		"activeUsers", "newUsers", "engagementRate", "averageSessionDuration",
		"bounceRate", "eventCount", "sessions", "screenPageViews",
		"sessionsPerUser", "totalRevenue",
	}
)

type Client struct {
	baseURL    string
	propertyID string
	http       *http.Client
}

// NewClient builds an authorized Data API client from service-account JSON.
func NewClient(ctx context.Context, credentialsJSON []byte, propertyID string) (*Client, error) {
	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, readonlyScope)
	if err != nil {
		return nil, fmt.Errorf("ga4 credentials: %w", err)
	}

	httpClient := oauth2.NewClient(ctx, creds.TokenSource)
	httpClient.Timeout = 15 * time.Second

	return &Client{
		baseURL:    defaultBaseURL,
		propertyID: propertyID,
		http:       httpClient,
	}, nil
}

// FetchReport runs the fixed report and returns name-keyed rows.
func (c *Client) FetchReport(ctx context.Context) ([]ReportRow, error) {
	url := fmt.Sprintf("%s/properties/%s:runReport", c.baseURL, c.propertyID)

	payload := runReportRequest{
		DateRanges: []dateRange{{StartDate: "30daysAgo", EndDate: "today"}},
		Dimensions: nameRefs(reportDimensions),
		Metrics:    nameRefs(reportMetrics),
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("ga4 marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ga4 request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ga4 runReport (status %d): %s", resp.StatusCode, string(body))
	}

	var response runReportResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("ga4 decode: %w", err)
	}

	return mapRows(&response)
}

func nameRefs(names []string) []nameRef {
	refs := make([]nameRef, len(names))
	for i, name := range names {
		refs[i] = nameRef{Name: name}
	}
	return refs
}
