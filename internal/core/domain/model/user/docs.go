// Package user models the callers of the tracking service.
//
// The package includes:
//   - Role: the closed set of roles (admin, courier, customer)
//   - User: a registered account with a password hash and an enabled flag
//   - Principal: the resolved identity attached to every request
//
// Key business rules:
//   - Usernames and e-mail addresses are unique across the directory
//   - Passwords are at least MinPasswordLength characters long
//   - A disabled user can still be resolved but may not act
package user
