// Package branchbound implements the maximum-coverage search as a
// best-first branch-and-bound over octree boxes. Boxes are ordered by an
// admissible coverage bound and a lower bound on distance to the origin, so
// the first single-point box popped with non-zero coverage is optimal.
//
// An incumbent seeded from the exact coverage at every range center lets the
// search stop as soon as no queued box can beat it, and gives budgeted runs a
// best-so-far answer.
package branchbound
