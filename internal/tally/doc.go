// Package tally counts element frequencies.
//
// Two strategies are provided. A Histogram is a dense counting array over a
// known [Lo, Hi] range and also doubles as a counting sort. MapCounts handles
// arbitrary values with a hash map. Both resolve the mode with the same tie
// rule, implemented by ModeTracker.
package tally
