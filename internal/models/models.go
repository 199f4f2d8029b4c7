// Package models defines the eight Daypack record types and their closed-set
// fields. Gorm tags describe the backend's snake_case columns; JSON tags
// carry the application's camelCase field names, which is also the shape
// stored in the local cache.
package models

import "github.com/google/uuid"

// NewID returns a fresh record identifier.
func NewID() string {
	return uuid.NewString()
}
