// Package store persists range datasets and their solved results in SQLite.
// It includes:
//   - Store interface and SQLiteStore implementation
//   - schema helpers with triggers that drop cached results when a dataset's
//     ranges change
//   - point coverage lookups evaluated in SQL via range_contains
package store
