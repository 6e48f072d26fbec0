// Package api contains the HTTP handlers for the prompting endpoints,
// request models with their validation rules, and the mapping from
// generation errors to HTTP status codes and stable error codes.
package api
