package ports

import (
	"context"
	"io"

	"go.trai.ch/kiln/internal/core/domain"
)

// Tracer is the entry point for creating spans around a build step.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Tracer interface {
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents one traced operation (a compile, an archive, a link, a
// dependency scan).
type Span interface {
	SetAttribute(key string, value any)
	RecordError(err error)
	End()
}

// Recorder is the entry point for progress-vertex reporting, backed by
// progrock.
type Recorder interface {
	Record(ctx context.Context, name string) (context.Context, Vertex)
	Close() error
}

// Vertex is one unit of progress-reported work: a single compile, archive,
// link, or scan step.
type Vertex interface {
	io.Writer
	Log(level domain.LogLevel, msg string)
	Cached()
	Complete(err error)
}
