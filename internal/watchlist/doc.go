// Package watchlist holds the application operations shared by the web handlers and the CLI.
//
// [Service] validates raw form or flag input with the rules in models, then drives a [MovieStore]
// and a [UserStore]. Failures are reported as wrapped sentinel errors from the shared package:
//   - ErrInvalidInput when a title, year, name, or credential is rejected
//   - ErrNotFound when a movie or user id does not exist
//   - ErrInvalidCredentials when a login does not match the admin
//
// Seeding ([Service.Forge]) and admin provisioning ([Service.ProvisionAdmin]) back the forge and
// admin commands.
package watchlist
