// Package source reads the raw text of a snapshot from wherever it lives.
//
// A location string selects the backend:
//
//   - "path/to/old.csv" or "file://path/to/old.csv": a local file.
//   - "s3://bucket/key": an object in S3/MinIO. "s3:///key" uses the configured bucket.
//   - "db://table": every row of a SQL table, primary key first.
//
// Every failure comes back as a *ReadError labelled with the side (old or new)
// being read, and matches ErrReadFailure with errors.Is.
package source
