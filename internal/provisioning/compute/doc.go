// Package compute declares the instance role and the container cluster of
// the base stack.
package compute
