// Package client is the transport binding between the Teebay CLI and the
// GraphQL backend.
//
// # Overview
//
// The package provides:
//  1. The Client interface: every query and mutation the CLI issues, plus the
//     cache hooks the session and services use for invalidation.
//  2. GraphQLClient, the implementation over github.com/machinebox/graphql.
//     Requests go through an http.Client with a cookie jar; a decorating
//     round tripper attaches the bearer token from a TokenSource and an
//     X-Request-ID.
//  3. A normalized cache (see package cache). Entity-shaped results are
//     stored once per (type, id); query results are roots of references.
//  4. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     SQLite session file.
//
// # Error Handling
//
// Failures are *OperationError values carrying the server message. Match
// the cause with errors.Is: ErrUnavailable for network failures and 4xx/5xx
// responses without a JSON body, ErrUnauthorized for authentication failures.
//
// Nothing is retried.
package client
