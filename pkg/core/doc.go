// Package core is the orchestration layer: one entry point per
// operation, each taking an options struct with an injectable
// filesystem, reading its inputs through the line source, running the
// matching engine, and returning a rendered string or structured
// result. Every call is pure given its inputs; nothing is cached
// across calls.
package core
