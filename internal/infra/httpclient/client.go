// Package httpclient builds the shared HTTP client used for every upstream
// call. The client's timeout is the only deadline this service enforces;
// nothing above it retries or cancels.
package httpclient

import (
	"net/http"
	"time"
)

func New(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
