// Package metrics observes a graph as its layout runs.
package metrics
