package sharedhttp

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/pkg/errors"
)

var Transport = &http.Transport{
	Proxy: http.ProxyFromEnvironment,
	DialContext: (&net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	ForceAttemptHTTP2:     true,
	MaxIdleConns:          100,
	MaxIdleConnsPerHost:   10,
	IdleConnTimeout:       90 * time.Second,
	TLSHandshakeTimeout:   10 * time.Second,
	ExpectContinueTimeout: 1 * time.Second,
	ReadBufferSize:        65536,
	WriteBufferSize:       65536,
	TLSClientConfig: &tls.Config{
		MinVersion: tls.VersionTLS12,
	},
}

// StatusError is returned for any response outside the 2xx range.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d for %s", e.StatusCode, e.URL)
}

func CheckStatusCode(statusCode int) error {
	switch statusCode {
	case http.StatusOK:

	case http.StatusUnauthorized, http.StatusForbidden:
		return retry.Unrecoverable(errors.Errorf("unrecoverable error downloading asset: status code %d", statusCode))

	case http.StatusMethodNotAllowed:
		return retry.Unrecoverable(errors.Errorf("method not allowed: status code %d", statusCode))

	case http.StatusNotFound:
		return errors.Errorf("asset not found - retrying: status code %d", statusCode)

	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout, http.StatusInternalServerError:
		return errors.Errorf("server error encountered while downloading asset: status code %d - retrying", statusCode)

	default:
		return retry.Unrecoverable(errors.Errorf("unexpected error downloading asset: status code %d", statusCode))
	}

	return nil
}

// Asset is a downloaded binary resource such as a cover image.
type Asset struct {
	Data        []byte
	ContentType string
}

// Download fetches a binary asset, retrying transient failures.
func Download(ctx context.Context, client *http.Client, url string) (Asset, error) {
	if client == nil {
		client = &http.Client{
			Timeout:   60 * time.Second,
			Transport: Transport,
		}
	}

	var asset Asset

	retryErr := retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return retry.Unrecoverable(errors.Wrap(err, "failed to create request"))
		}

		resp, err := client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return retry.Unrecoverable(ctx.Err())
			}
			return errors.Wrap(err, "failed to get asset")
		}
		defer resp.Body.Close()

		if err := CheckStatusCode(resp.StatusCode); err != nil {
			return err
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "failed to read asset data")
		}

		asset = Asset{Data: data, ContentType: resp.Header.Get("Content-Type")}
		return nil
	},
		retry.Context(ctx),
		retry.Delay(time.Second*3),
		retry.Attempts(3),
		retry.MaxJitter(time.Second*1),
		retry.LastErrorOnly(true),
	)

	return asset, retryErr
}
