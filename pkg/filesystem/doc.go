// Package filesystem provides the line source for the text engines:
// an OS-backed implementation of types.FS plus helpers that read a
// path into terminator-stripped lines or raw bytes and map OS failures
// onto the error taxonomy.
package filesystem
