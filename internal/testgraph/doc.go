// Package testgraph centralises the literal small graphs used across this
// module's test suites. It is not itself a _test.go file so every package's
// tests can import it.
package testgraph
