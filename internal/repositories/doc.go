// Package repositories implements SQLite persistence for the watchlist entities on top of sqlx.
//
//   - [MovieRepository] : movie CRUD, listing in insertion order, and bulk inserts for seeding
//   - [UserRepository] : the admin account, looked up with [UserRepository.First]
//
// Writes run in their own transaction. Lookups and writes against a missing row return an error
// wrapping [shared.ErrNotFound]; input that fails model validation wraps [shared.ErrInvalidInput]
// and never reaches the database.
package repositories
