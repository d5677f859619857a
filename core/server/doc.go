// Package server holds the HTTP server configuration.
//
// The serve command owns the Fiber application; this package only describes
// where it listens, how long shutdown may take and which API key protects it.
package server
