// Package core holds small numeric and configuration helpers shared by the
// processing packages: clamping, denormal flushing, level conversion and
// the common sample-rate/block-size/channel configuration, and channel-major
// block allocation.
package core
