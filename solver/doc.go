// Package solver defines the result, statistics and error types shared by
// the maximum-coverage solvers in this module. Implementations include an
// exhaustive baseline (bruteforce) and an octree branch-and-bound search
// (branchbound).
package solver
