// Package metrics provides hooks for request instrumentation.
package metrics

import "time"

// Request types reported alongside HTTP verbs.
const (
	TypeGRPC = "GRPC"
)

// Request describes one completed gateway call.
type Request struct {
	// Type is the HTTP verb or TypeGRPC.
	Type string
	// Name groups requests in reports: the route template or the gRPC method.
	Name           string
	ResponseTime   time.Duration
	ResponseLength int64
	Err            error
}

// Failed reports whether the call returned an error.
func (r Request) Failed() bool { return r.Err != nil }

// Recorder captures request events.
// Implementations must be safe for concurrent use.
type Recorder interface {
	RecordRequest(r Request)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}

// Multi fans one event out to several recorders. Nil recorders are skipped.
func Multi(recorders ...Recorder) Recorder {
	out := make(multiRecorder, 0, len(recorders))
	for _, r := range recorders {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

type multiRecorder []Recorder

func (m multiRecorder) RecordRequest(r Request) {
	for _, rec := range m {
		rec.RecordRequest(r)
	}
}
