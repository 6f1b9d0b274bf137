// Package coverage is the entry point for maximum-coverage queries. It picks
// between the exhaustive and branch-and-bound solvers and exposes a single
// Solve call for callers that hold a parsed range list.
package coverage
