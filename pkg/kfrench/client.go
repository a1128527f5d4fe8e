package kfrench

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"famafrench/internal/domain"
)

const defaultBaseURL = "http://mba.tuck.dartmouth.edu/pages/faculty/ken.french/ftp"

// Client downloads zipped CSV datasets from Ken French's online data
// library. Responses are cached in memory per dataset name since a
// comparison run touches the same file for several factors.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string

	mu    sync.Mutex
	cache map[string][]byte
}

func NewClient() *Client {
	return &Client{
		HTTPClient: http.DefaultClient,
		BaseURL:    defaultBaseURL,
		cache:      map[string][]byte{},
	}
}

// DatasetName maps a factor set and frequency onto the library's zip
// file names.
func DatasetName(factors string, freq domain.Frequency) (string, error) {
	switch factors {
	case "3factors":
		switch freq {
		case domain.Monthly, domain.Annual, domain.Quarterly:
			return "F-F_Research_Data_Factors", nil
		case domain.Weekly:
			return "F-F_Research_Data_Factors_weekly", nil
		case domain.Daily:
			return "F-F_Research_Data_Factors_daily", nil
		}
	case "5factors":
		switch freq {
		case domain.Monthly, domain.Annual, domain.Quarterly:
			return "F-F_Research_Data_5_Factors_2x3", nil
		case domain.Daily:
			return "F-F_Research_Data_5_Factors_2x3_daily", nil
		}
	case "momentum":
		switch freq {
		case domain.Monthly, domain.Annual:
			return "F-F_Momentum_Factor", nil
		case domain.Daily:
			return "F-F_Momentum_Factor_daily", nil
		}
	case "st_reversal":
		switch freq {
		case domain.Monthly, domain.Annual:
			return "F-F_ST_Reversal_Factor", nil
		case domain.Daily:
			return "F-F_ST_Reversal_Factor_daily", nil
		}
	case "lt_reversal":
		switch freq {
		case domain.Monthly, domain.Annual:
			return "F-F_LT_Reversal_Factor", nil
		case domain.Daily:
			return "F-F_LT_Reversal_Factor_daily", nil
		}
	}
	return "", fmt.Errorf("no library dataset for %s at frequency %s", factors, freq)
}

func (c *Client) getBytes(ctx context.Context, name string) ([]byte, error) {
	c.mu.Lock()
	cached, ok := c.cache[name]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	url := fmt.Sprintf("%s/%s_CSV.zip", c.BaseURL, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download %s with status code %d", name, response.StatusCode)
	}

	c.mu.Lock()
	c.cache[name] = responseBytes
	c.mu.Unlock()

	return responseBytes, nil
}

// Download fetches the named dataset, unzips it in memory and parses
// the series block matching the requested frequency. Column names
// follow the library's headers (e.g. Mkt-RF, SMB, HML, RF).
func (c *Client) Download(ctx context.Context, name string, freq domain.Frequency) (map[string]domain.Series, error) {
	raw, err := c.getBytes(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", name, err)
	}

	reader, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s zip archive: %w", name, err)
	}

	var csvFile *zip.File
	for _, f := range reader.File {
		if strings.HasSuffix(strings.ToLower(f.Name), ".csv") {
			csvFile = f
			break
		}
	}
	if csvFile == nil {
		return nil, fmt.Errorf("%s archive has no csv file", name)
	}

	rc, err := csvFile.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", csvFile.Name, err)
	}
	defer rc.Close()

	contents, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", csvFile.Name, err)
	}

	series, err := Parse(string(contents), freq)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return series, nil
}
