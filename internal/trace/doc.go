// Package trace records what an intlc run is doing: which stage is active,
// which file or locale a worker holds and how long each took.
//
// Spans are opened from a context and carry the stage and file they belong
// to, so every event names its place in the pipeline without a lookup:
//
//	span, ctx := trace.Stage(ctx, "extract")
//	defer span.End("")
//
//	fs, _ := trace.File(ctx, "src/app.tsx")
//	fs.Count("messages", 3).End("")
//
// A nil *Span is valid and records nothing; with tracing off Stage and File
// return nil.
//
// Levels: off, error (events are kept in a ring and printed only when the
// command fails), stage and file.
package trace
