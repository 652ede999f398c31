// Package metadata persists small client-side values (the session token,
// the last used email) in the local SQLite database. Get returns (nil, nil)
// for absent keys.
package metadata
