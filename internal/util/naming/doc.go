// Package naming builds object storage keys for published cloud assemblies.
//
// Keys follow the pattern {prefix}/{stack}/{release}/{file}. The release
// segment is a UTC timestamp so that successive publishes never overwrite
// each other and sort chronologically.
package naming
