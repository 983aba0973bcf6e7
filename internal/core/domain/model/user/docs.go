// Package user contains the account aggregate served under /api/users.
// Passwords are only ever held as bcrypt digests (PasswordHash).
package user
