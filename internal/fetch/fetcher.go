package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second
	DefaultRetries = 2
	DefaultBackoff = 300 * time.Millisecond
)

// Fetcher retrieves the raw catalog document from the POS endpoint.
// Transport failures (connection errors, timeouts) are retried with linear
// backoff; an HTTP error status is a server-acknowledged rejection and
// fails immediately.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	retries int
	backoff time.Duration
	apiKey  string

	sleep func(time.Duration)
}

func NewFetcher(apiKey string) *Fetcher {
	return NewFetcherWithPolicy(apiKey, DefaultTimeout, DefaultRetries, DefaultBackoff)
}

func NewFetcherWithPolicy(apiKey string, timeout time.Duration, retries int, backoff time.Duration) *Fetcher {
	return &Fetcher{
		client:  &http.Client{},
		timeout: timeout,
		retries: retries,
		backoff: backoff,
		apiKey:  apiKey,
		sleep:   time.Sleep,
	}
}

// Fetch GETs the document, retrying transport failures up to the bound.
// Backoff between attempt n and n+1 is backoff*n (linearly increasing).
func (f *Fetcher) Fetch(ctx context.Context, url string) (map[string]interface{}, error) {
	var lastErr error
	attempts := 0

	for attempt := 0; attempt <= f.retries; attempt++ {
		attempts++

		doc, err := f.attempt(ctx, url)
		if err == nil {
			return doc, nil
		}
		if !retryable(err) {
			return nil, stamped(err, attempts)
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
		if attempt < f.retries {
			f.sleep(f.backoff * time.Duration(attempt+1))
		}
	}

	return nil, stamped(lastErr, attempts)
}

func (f *Fetcher) attempt(ctx context.Context, url string) (map[string]interface{}, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if f.apiKey != "" {
		req.Header.Set("X-API-Key", f.apiKey)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Timeout: isTimeout(attemptCtx, err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Timeout: isTimeout(attemptCtx, err), Err: err}
	}

	// Content type is informational only: decode decides.
	var doc map[string]interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &ParseError{URL: url, Err: err}
	}

	// The POS wraps the payload as {"data": {...}} on some deployments.
	if data, ok := doc["data"].(map[string]interface{}); ok {
		return data, nil
	}
	return doc, nil
}

// retryable: only transport-level failures without a status code. HTTP
// errors and parse errors will not get better by asking again.
func retryable(err error) bool {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Status == 0
	}
	return false
}

func stamped(err error, attempts int) error {
	var fe *FetchError
	if errors.As(err, &fe) {
		fe.Attempts = attempts
	}
	return err
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
