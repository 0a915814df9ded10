package apiclient

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/jrsteele09/hostel-admin/storage"
)

// beforeRequest attaches the request id, the bearer token and, for mutating
// methods, the CSRF token. It never fails the request.
func (c *Client) beforeRequest(_ *resty.Client, req *resty.Request) error {
	req.SetHeader(HeaderRequestID, uuid.NewString())

	if token := c.bearerToken(req.Context()); token != "" {
		req.SetAuthToken(token)
	}

	if !isReadMethod(req.Method) {
		token, err := c.FetchCSRFToken(req.Context())
		if err != nil {
			c.logger.Warn().Err(err).Str("method", req.Method).Str("url", req.URL).
				Msg("csrf token unavailable, sending request without it")
			return nil
		}
		req.SetHeader(HeaderXSRFToken, token)
	}
	return nil
}

// afterResponse classifies failed responses by logging them. Credentials are
// left alone on a 401; the caller decides what an expired session means.
func (c *Client) afterResponse(_ *resty.Client, resp *resty.Response) error {
	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		c.logger.Warn().Int("status", resp.StatusCode()).Str("method", resp.Request.Method).Str("url", resp.Request.URL).
			Msg("unauthorized response, session missing or expired")
	case StatusCSRFMismatch:
		c.logger.Error().Int("status", resp.StatusCode()).Str("method", resp.Request.Method).Str("url", resp.Request.URL).
			Msg("csrf token mismatch")
	}
	return nil
}

// onError runs for every failed request. resty wraps transport failures in a
// ResponseError too, so only one carrying a real HTTP response is skipped.
func (c *Client) onError(req *resty.Request, err error) {
	var respErr *resty.ResponseError
	if errors.As(err, &respErr) {
		if respErr.Response != nil && respErr.Response.RawResponse != nil {
			return
		}
		err = respErr.Err
	}
	kind := "network"
	if isTimeout(err) {
		kind = "timeout"
	}
	c.logger.Error().Err(err).Str("kind", kind).Str("method", req.Method).Str("url", req.URL).
		Msg("request failed without a response")
}

// bearerToken prefers the administrative token over the student token.
func (c *Client) bearerToken(ctx context.Context) string {
	if ctx == nil {
		ctx = context.Background()
	}
	if token, ok := c.store.Get(ctx, storage.KeyAdminToken); ok && token != "" {
		return token
	}
	if token, ok := c.store.Get(ctx, storage.KeyStudentToken); ok && token != "" {
		return token
	}
	return ""
}

func isReadMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
