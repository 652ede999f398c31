// Package services holds the application services of the Teebay CLI.
//
// Session owns the token lifecycle and the current identity. ProductService,
// TransactionService and UserService are thin wrappers over client.Client
// that apply the cache invalidation each mutation requires.
package services
