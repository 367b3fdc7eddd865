// Package retry provides exponential backoff retry logic for transient failures.
//
// The [Do] function retries an operation with configurable attempts, initial
// delay and maximum delay. It is used for object storage uploads, where
// throttling and 5xx responses are expected to clear on their own.
package retry
