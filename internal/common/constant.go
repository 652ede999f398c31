// Package common contains shared constants and sentinel errors used across
// Teebay client components.
package common

// AuthTokenKey is the metadata key under which the bearer token is persisted
// between runs. Absence of the key means the user is logged out.
const AuthTokenKey = "authToken"

// AuthorizationHeaderName carries the bearer credential on outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName tags every outbound GraphQL request for log correlation.
const RequestIDHeaderName = "X-Request-ID"

// BearerPrefix precedes the token in the Authorization header.
const BearerPrefix = "Bearer "
