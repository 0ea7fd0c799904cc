// Package window generates the tapering windows used ahead of spectral
// analysis.
package window
