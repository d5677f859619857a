// Package reconciliation runs a full reconciliation: read both snapshots,
// classify every record, spot-check the result and build the run document.
//
// The Service reads the new snapshot before the old one and stops early when it
// is empty. The Handler exposes runs over HTTP:
//
//	GET  /reconcile?old=s3://archive/old.csv&new=db://customers
//	POST /reconcile  {"old": "K1,a\n", "new": "K1,b\n"}
//
// GET only reads the configured source.old and source.new locations or an entry
// of source.allowed; any other location is rejected before it is read.
//
// Errors map to 502 for unreadable sources, 422 for an empty new snapshot,
// 400 for malformed rows or rejected locations and 500 otherwise.
package reconciliation
