// Package bruteforce provides an exhaustive maximum-coverage solver that
// scores every lattice point of the search volume. It is exact by
// construction and serves as the baseline for small inputs and as the
// reference the branch-and-bound search is checked against.
package bruteforce
