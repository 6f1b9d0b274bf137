// Package engine opens SQLite databases through the modernc.org/sqlite driver
// and registers the range SQL functions used by the store. Keeping it thin
// lets every package share one driver registration.
package engine
