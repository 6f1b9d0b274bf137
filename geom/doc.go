// Package geom defines the integer geometry shared by this module:
//   - Coord, a point on the 3-D integer lattice
//   - Range, a Manhattan ball (center + radius)
//   - checked Manhattan distance and input validation
//   - Coord BLOB encoding and the pos=<x,y,z>, r=N text notation
package geom
