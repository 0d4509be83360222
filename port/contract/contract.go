// Package contract holds the shared shape of the reusable test suites in this module.
package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Contract represents a behavioural specification that an interface implementation must satisfy.
//
// The consumer of an interface (such as iterkit.Last consuming an iterkit.Sequence)
// states its expectations towards the supplier as a Contract,
// so every supplier implementation can be checked against the same behaviour.
type Contract interface {
	testcase.Suite
	// Test asserts the behavioural requirements against a supplier implementation.
	Test(*testing.T)
	// Benchmark measures the aspects that matter for the consumer.
	Benchmark(*testing.B)
}
