package sharedhttp

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/gocolly/colly"
	"github.com/gocolly/colly/extensions"
	"github.com/pkg/errors"
)

// Request describes a single call to a provider's site.
type Request struct {
	Method string
	URL    string
	Query  url.Values
	Header http.Header
	Body   string
}

// Get is a shorthand for a plain GET request.
func Get(rawURL string) Request {
	return Request{Method: http.MethodGet, URL: rawURL}
}

// Fetcher performs one request and returns the response body as text.
// Implementations never retry and never cache.
type Fetcher interface {
	Fetch(ctx context.Context, req Request) (string, error)
}

type CollectorOptions struct {
	Timeout          time.Duration
	CloudflareBypass bool
}

// Collector is a Fetcher backed by a colly collector.
type Collector struct {
	collector *colly.Collector
}

func NewCollector(opts CollectorOptions) *Collector {
	collector := colly.NewCollector(
		colly.AllowURLRevisit(),
	)

	var rt http.RoundTripper = Transport
	if opts.CloudflareBypass {
		rt = cloudflarebp.AddCloudFlareByPass(rt)
	}
	collector.WithTransport(rt)

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	collector.SetRequestTimeout(timeout)

	return &Collector{collector: collector}
}

func (c *Collector) Fetch(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	target, err := req.target()
	if err != nil {
		return "", err
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var (
		body      string
		statusErr error
	)

	// Clone drops callbacks, so the user agent hook goes on every clone.
	col := c.collector.Clone()
	extensions.RandomUserAgent(col)
	col.OnResponse(func(r *colly.Response) {
		body = string(r.Body)
	})
	col.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode != 0 {
			statusErr = &StatusError{StatusCode: r.StatusCode, URL: target}
		}
	})

	hdr := http.Header{}
	for k, v := range req.Header {
		hdr[k] = append([]string(nil), v...)
	}

	var data *strings.Reader
	if req.Body != "" {
		data = strings.NewReader(req.Body)
	}

	if data != nil {
		err = col.Request(method, target, data, nil, hdr)
	} else {
		err = col.Request(method, target, nil, nil, hdr)
	}
	if statusErr != nil {
		return "", statusErr
	}
	if err != nil {
		return "", errors.Wrapf(err, "%s %s", method, target)
	}

	return body, nil
}

// target merges Query into the request URL.
func (r Request) target() (string, error) {
	u, err := url.Parse(r.URL)
	if err != nil {
		return "", errors.Wrapf(err, "invalid url %q", r.URL)
	}

	if len(r.Query) > 0 {
		q := u.Query()
		for k, vs := range r.Query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}
