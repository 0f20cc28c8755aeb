// Package models defines the domain entities of the watchlist and the rules they must satisfy
// before they reach storage.
//
//   - [Movie] : a title (1 to 60 characters) and a four digit year
//   - [User] : the single admin, with a display name, optional login name, and bcrypt password hash
//
// [ValidateMovie], [ValidateName] and [ValidateCredentials] trim their input and return
// [shared.ErrInvalidInput] wrapped with the reason when a rule is violated. Callers never persist
// a value that failed validation.
package models
