// Package s3 publishes synthesized cloud assemblies to Amazon S3 or an
// S3-compatible object store.
//
// Every assembly file is uploaded under a timestamped release prefix and a
// LATEST pointer object is written last. Uploads are retried on transient
// failures; access and missing-bucket errors fail immediately.
package s3
