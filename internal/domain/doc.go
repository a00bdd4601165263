// Package domain contains the core data types for the Travel Mate API.
// This package depends only on google/uuid and is imported by every other
// internal package (repo, service, handler).
package domain
