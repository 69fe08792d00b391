package client

import (
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// ErrServiceUnavailable is the single outcome for every remote failure:
// transport errors, non-2xx statuses and malformed bodies all collapse into
// it so callers can switch to their local fallback without inspecting causes.
var ErrServiceUnavailable = errors.New("service unavailable")

func unavailable(service, op string, err error) error {
	return fmt.Errorf("%s %s: %v: %w", service, op, err, ErrServiceUnavailable)
}

func httpUnavailable(service, op string, resp *resty.Response) error {
	return fmt.Errorf("%s %s: status %d: %w", service, op, resp.StatusCode(), ErrServiceUnavailable)
}
