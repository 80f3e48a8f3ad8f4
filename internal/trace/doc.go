// Package trace provides levelled tracing of driver phases.
//
// A Tracer receives Events: span begin/end pairs produced by Begin/End and
// instant points produced by Point. Events carry a Scope (driver, pass,
// module, node) and the tracer Level decides which scopes are emitted:
//
//	off    nothing
//	error  nothing in the normal path
//	phase  driver and pass spans (lex, parse, sema)
//	detail + per-file module spans
//	debug  + node-level points (parser recovery)
//
// StreamTracer writes events immediately as text or NDJSON; RingTracer keeps
// the last N events in memory. Nop is used whenever tracing is disabled.
package trace
