package http

import (
	"context"
	"io"
	"net/http"
	neturl "net/url"

	"github.com/pkg/errors"

	"github.com/abdul-hamid-achik/hitpart/packages/body"
	"github.com/abdul-hamid-achik/hitpart/packages/header"
	"github.com/abdul-hamid-achik/hitpart/packages/multipart"
)

// NewRequest creates a request whose body is read from b. Every field of h
// is set on the request; Content-Length is carried by req.ContentLength.
func NewRequest(ctx context.Context, method, requestURL string, b body.Value, h header.Map) (*http.Request, error) {
	if err := ValidateURL(requestURL); err != nil {
		return nil, err
	}

	length, err := b.ContentLength()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, nil)
	if err != nil {
		return nil, err
	}

	for _, f := range h.Fields() {
		req.Header.Set(f.Name, f.Value)
	}

	if length == 0 {
		req.Body = http.NoBody
		req.GetBody = func() (io.ReadCloser, error) { return http.NoBody, nil }
		return req, nil
	}

	rc, err := b.Open()
	if err != nil {
		return nil, err
	}
	req.Body = rc
	req.ContentLength = length
	req.GetBody = b.Open
	return req, nil
}

// NewMultipartRequest encodes a and wraps the result in a request. The
// returned body.Value must be cleaned up by the caller once the request
// has been sent.
func NewMultipartRequest(ctx context.Context, method, requestURL string, a *multipart.Assembly) (*http.Request, body.Value, error) {
	if err := ValidateURL(requestURL); err != nil {
		return nil, body.Value{}, err
	}

	b, h, err := a.JoinAsFormData()
	if err != nil {
		return nil, body.Value{}, err
	}

	req, err := NewRequest(ctx, method, requestURL, b, h)
	if err != nil {
		_ = b.Cleanup()
		return nil, body.Value{}, err
	}
	return req, b, nil
}

// ValidateURL checks that a URL is well-formed and uses an allowed scheme
func ValidateURL(rawURL string) error {
	u, err := neturl.Parse(rawURL)
	if err != nil {
		return errors.Wrap(err, "invalid URL")
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("unsupported URL scheme: %s (only http and https are allowed)", u.Scheme)
	}

	if u.Host == "" {
		return errors.New("URL must have a host")
	}

	return nil
}
