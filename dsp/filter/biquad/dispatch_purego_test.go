//go:build purego

package biquad

import "testing"

func TestProcessBlockDispatch_PuregoUsesGeneric(t *testing.T) {
	if name := KernelName(); name != "generic" {
		t.Fatalf("expected generic implementation in purego, got %q", name)
	}
}
