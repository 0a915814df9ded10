package apiclient

import (
	"context"
	"net/http"
	"net/url"

	apperrors "github.com/jrsteele09/hostel-admin/internal/errors"
	"github.com/pkg/errors"
)

const csrfFlightKey = "csrf"

// FetchCSRFToken returns the session's CSRF token. The cookie jar is checked
// first, then the in-memory copy; only when both are empty is the bootstrap
// endpoint called. Concurrent callers share a single bootstrap request.
func (c *Client) FetchCSRFToken(ctx context.Context) (string, error) {
	if token := c.csrfFromCookies(); token != "" {
		c.setCSRFToken(token)
		return token, nil
	}
	if token := c.cachedCSRFToken(); token != "" {
		return token, nil
	}

	// The shared bootstrap must not die with whichever caller started it.
	shared := context.WithoutCancel(ctx)
	token, err, _ := c.csrfGroup.Do(csrfFlightKey, func() (any, error) {
		return c.bootstrapCSRF(shared)
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

// ResetCSRFToken forgets the token so the next mutating request bootstraps a
// new one. The client never does this by itself.
func (c *Client) ResetCSRFToken() {
	c.setCSRFToken("")
	c.jar.SetCookies(c.baseURL, []*http.Cookie{{Name: CookieXSRFToken, Path: "/", MaxAge: -1}})
}

func (c *Client) bootstrapCSRF(ctx context.Context) (string, error) {
	resp, err := c.http.R().SetContext(ctx).Get(c.csrfURL)
	if err != nil {
		return "", errors.Wrapf(apperrors.ErrCsrfUnavailable, "[Client.FetchCSRFToken] GET %s: %v", c.csrfURL, err)
	}
	token := c.csrfFromCookies()
	if token == "" {
		return "", errors.Wrapf(apperrors.ErrCsrfUnavailable, "[Client.FetchCSRFToken] status %d without %s cookie", resp.StatusCode(), CookieXSRFToken)
	}
	c.setCSRFToken(token)
	c.logger.Debug().Str("url", c.csrfURL).Msg("csrf token bootstrapped")
	return token, nil
}

func (c *Client) csrfFromCookies() string {
	for _, cookie := range c.jar.Cookies(c.baseURL) {
		if cookie.Name != CookieXSRFToken || cookie.Value == "" {
			continue
		}
		if value, err := url.QueryUnescape(cookie.Value); err == nil {
			return value
		}
		return cookie.Value
	}
	return ""
}

func (c *Client) cachedCSRFToken() string {
	c.csrfLock.RLock()
	defer c.csrfLock.RUnlock()
	return c.csrfToken
}

func (c *Client) setCSRFToken(token string) {
	c.csrfLock.Lock()
	defer c.csrfLock.Unlock()
	c.csrfToken = token
}
