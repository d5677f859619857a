// Package utils provides common helpers that don't fit into domain-specific packages,
// such as converting database values to the text form snapshots are compared in.
package utils
