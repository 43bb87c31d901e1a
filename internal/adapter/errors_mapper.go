package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody caps the response text copied into error messages.
const maxErrorBody = 512

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}
	if body == "" {
		body = http.StatusText(code)
	}

	var kind error
	switch code {
	case http.StatusBadRequest:
		kind = ErrBadRequest
	case http.StatusUnauthorized:
		kind = ErrUnauthorized
	case http.StatusForbidden:
		kind = ErrForbidden
	case http.StatusNotFound:
		kind = ErrNotFound
	case http.StatusConflict:
		kind = ErrConflict
	case http.StatusUnprocessableEntity:
		kind = ErrUnprocessable
	case http.StatusTooManyRequests:
		kind = ErrTooManyRequests
	case http.StatusInternalServerError:
		kind = ErrInternalServerError
	case http.StatusBadGateway:
		kind = ErrBadGateway
	case http.StatusServiceUnavailable:
		kind = ErrServiceUnavailable
	default:
		return fmt.Errorf("%w: %s %s: http %d: %s", ErrTransport, resp.Request.Method, resp.Request.URL, code, body)
	}

	return fmt.Errorf("%w: %w: %s %s: %s", ErrTransport, kind, resp.Request.Method, resp.Request.URL, body)
}

// transportError wraps a failure that happened before a response arrived.
func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrTransport, op, err)
}

// decodeError wraps a body that could not be decoded.
func decodeError(op string, err error) error {
	return fmt.Errorf("%w: %s: malformed response: %w", ErrTransport, op, err)
}

// retryable reports whether a failed call is worth repeating: network
// failures and server side overload, never client errors.
func retryable(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	code := resp.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
