package providers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Roma7-7-7/daily-kaenguru/internal/dal"
)

// HTTPOrigin downloads daily content from {baseURL}/{YYYY-MM}/{DD}/{filename}
type HTTPOrigin struct {
	baseURL  string
	filename string
	client   *http.Client
}

func NewHTTPOrigin(baseURL, filename string, timeout time.Duration) *HTTPOrigin {
	return &HTTPOrigin{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		filename: filename,
		client:   &http.Client{Timeout: timeout},
	}
}

// URL returns the location of the content for d
func (o *HTTPOrigin) URL(d dal.Date) string {
	return fmt.Sprintf("%s/%d-%02d/%02d/%s", o.baseURL, d.Year, d.Month, d.Day, o.filename)
}

func (o *HTTPOrigin) Download(ctx context.Context, d dal.Date) ([]byte, error) {
	url := o.URL(d)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("get content from url=%s: %w", url, err)
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get content from url=%s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get content from url=%s: %w: %s", url, ErrUnexpectedStatus, resp.Status)
	}

	var res bytes.Buffer
	if _, err = res.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read content from url=%s: %w", url, err)
	}

	return res.Bytes(), nil
}
