package httpgw

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gatewayperf/gatewayperf/internal/metrics"
)

type extensionsKey struct{}

func withExtensions(ctx context.Context, ext Extensions) context.Context {
	return context.WithValue(ctx, extensionsKey{}, ext)
}

func extensionsFrom(ctx context.Context) (Extensions, bool) {
	ext, ok := ctx.Value(extensionsKey{}).(Extensions)
	return ext, ok
}

// recordingTransport reports every request to a Recorder once its body is closed,
// so response time and length cover the full download.
type recordingTransport struct {
	next     http.RoundTripper
	recorder metrics.Recorder
	now      func() time.Time
}

func (t *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	name := req.URL.Path
	if ext, ok := extensionsFrom(req.Context()); ok && ext.Route != "" {
		name = ext.Route
	}

	start := t.now()
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		t.recorder.RecordRequest(metrics.Request{
			Type:         req.Method,
			Name:         name,
			ResponseTime: t.now().Sub(start),
			Err:          err,
		})
		return nil, err
	}

	status := resp.StatusCode
	resp.Body = &recordedBody{
		ReadCloser: resp.Body,
		finish: func(n int64) {
			ev := metrics.Request{
				Type:           req.Method,
				Name:           name,
				ResponseTime:   t.now().Sub(start),
				ResponseLength: n,
			}
			if status < 200 || status > 299 {
				ev.Err = &StatusError{Method: req.Method, Route: name, StatusCode: status}
			}
			t.recorder.RecordRequest(ev)
		},
	}
	return resp, nil
}

type recordedBody struct {
	io.ReadCloser
	n      int64
	once   sync.Once
	finish func(n int64)
}

func (b *recordedBody) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)
	b.n += int64(n)
	return n, err
}

func (b *recordedBody) Close() error {
	err := b.ReadCloser.Close()
	b.once.Do(func() { b.finish(b.n) })
	return err
}
