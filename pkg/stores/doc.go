// Package stores persists extraction runs and their rendered artifacts.
//
// The SQLite implementation uses modernc.org/sqlite (no cgo) with WAL
// mode and embedded golang-migrate migrations. A run row tracks the
// lifecycle of one extraction; artifact rows hold the rendered document,
// data file and per-resource blocks so past output can be inspected
// without re-running the extraction.
package stores
