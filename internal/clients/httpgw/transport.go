package httpgw

import (
	"net"
	"net/http"
	"time"
)

// DialTimeout is the connection timeout.
const DialTimeout = 10 * time.Second

// NewHTTPClient creates an HTTP client tuned for many concurrent virtual users
// talking to one host. timeout bounds the whole call, header wait included;
// zero means no limit. It does not follow redirects.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   DialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: timeout,
			MaxIdleConns:          256,
			MaxIdleConnsPerHost:   256,
			IdleConnTimeout:       90 * time.Second,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}
