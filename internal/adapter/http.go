package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/dspace-utils/internal/config"
	"github.com/MKhiriev/dspace-utils/internal/logger"
	"github.com/MKhiriev/dspace-utils/internal/utils"
	"github.com/MKhiriev/dspace-utils/models"
	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
)

const (
	// csrfHeader carries the current CSRF token in DSpace responses.
	csrfHeader = "DSPACE-XSRF-TOKEN"
	// csrfRequestHeader echoes the token back on every request.
	csrfRequestHeader = "X-XSRF-TOKEN"
)

type dspaceAdapter struct {
	client   *utils.HTTPClient
	endpoint string

	username string
	password string

	mu      sync.RWMutex
	session models.Session
	csrf    string

	// deleteBackoff builds the retry policy for bitstream deletion.
	deleteBackoff func() retry.Backoff
	now           func() time.Time

	logger *logger.Logger
}

// NewDSpaceAdapter constructs the resty implementation of [RepositoryAdapter].
// It validates the endpoint from apiCfg, configures the underlying HTTP
// client with the base URL and request timeout, and installs a response hook
// that keeps the CSRF token current.
//
// Returns an error if apiCfg.Endpoint is empty or not an absolute URL.
func NewDSpaceAdapter(apiCfg config.ClientAPI, logger *logger.Logger) (RepositoryAdapter, error) {
	endpoint, err := normalizeEndpoint(apiCfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid api endpoint: %w", err)
	}

	a := &dspaceAdapter{
		client:   utils.NewHTTPClient(endpoint, apiCfg.RequestTimeout),
		endpoint: endpoint,
		username: apiCfg.Username,
		password: apiCfg.Password,
		deleteBackoff: func() retry.Backoff {
			return retry.WithMaxRetries(3, retry.NewExponential(250*time.Millisecond))
		},
		now:    time.Now,
		logger: logger,
	}
	a.client.OnAfterResponse(a.captureCSRF)

	return a, nil
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Endpoint implements [RepositoryAdapter].
func (a *dspaceAdapter) Endpoint() string {
	return a.endpoint
}

// captureCSRF stores a rotated CSRF token from any response carrying one.
func (a *dspaceAdapter) captureCSRF(_ *resty.Client, resp *resty.Response) error {
	if token := resp.Header().Get(csrfHeader); token != "" {
		a.mu.Lock()
		a.csrf = token
		a.mu.Unlock()
	}
	return nil
}

// Authenticate implements [RepositoryAdapter]. It obtains a CSRF token from
// GET /security/csrf, then POSTs the credentials as a form to
// POST /authn/login. The bearer token is taken from the Authorization
// response header and parsed without verification to learn its expiry.
func (a *dspaceAdapter) Authenticate(ctx context.Context) (models.Session, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/security/csrf")
	if err != nil {
		return models.Session{}, transportError("csrf request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	a.mu.RLock()
	csrf := a.csrf
	a.mu.RUnlock()

	resp, err = a.client.R().
		SetContext(ctx).
		SetHeader(csrfRequestHeader, csrf).
		SetFormData(map[string]string{
			"user":     a.username,
			"password": a.password,
		}).
		Post("/authn/login")
	if err != nil {
		return models.Session{}, transportError("login request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrMissingToken, err)
	}

	session, err := utils.ParseSessionToken(token)
	if err != nil {
		// DSpace always issues JWTs; an opaque token still works as a bearer.
		session = models.Session{SignedString: token}
	}

	a.mu.Lock()
	session.CSRFToken = a.csrf
	a.session = session
	a.mu.Unlock()

	event := a.logger.Info().Str("user", a.username).Str("eperson", session.EPersonID)
	if session.ExpiresAt != nil {
		event = event.Time("expires", session.ExpiresAt.Time)
	}
	event.Msg("authenticated against DSpace REST API")

	return session, nil
}

// authedRequest returns a request carrying the bearer token and the CSRF
// header. An expired session is renewed first.
func (a *dspaceAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	a.mu.RLock()
	session := a.session
	a.mu.RUnlock()

	if session.SignedString != "" && session.Expired(a.now()) {
		a.logger.Debug().Msg("session expired, logging in again")
		var err error
		if session, err = a.Authenticate(ctx); err != nil {
			return nil, fmt.Errorf("renew session: %w", err)
		}
	}

	a.mu.RLock()
	csrf := a.csrf
	a.mu.RUnlock()

	req := a.client.R().SetContext(ctx)
	if session.SignedString != "" {
		req.SetAuthToken(session.SignedString)
	}
	if csrf != "" {
		req.SetHeader(csrfRequestHeader, csrf)
	}
	return req, nil
}

// do runs a request built by authedRequest and maps the outcome.
func (a *dspaceAdapter) do(ctx context.Context, op, method, path string, build func(*resty.Request)) (*resty.Response, error) {
	req, err := a.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	if build != nil {
		build(req)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, transportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return resp, fmt.Errorf("%s: %w", op, err)
	}

	a.logger.Debug().
		Str("method", method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg(op)

	return resp, nil
}

// get is a shorthand for a JSON GET.
func (a *dspaceAdapter) get(ctx context.Context, op, path string, params map[string]string) (*resty.Response, error) {
	return a.do(ctx, op, http.MethodGet, path, func(r *resty.Request) {
		if len(params) > 0 {
			r.SetQueryParams(params)
		}
	})
}
