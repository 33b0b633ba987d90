// Package idgen produces opaque unique identifiers for persisted records.
package idgen

import "github.com/google/uuid"

// Generator yields a new identifier per call.
type Generator interface {
	NewID() string
}

// UUIDGenerator generates random (v4) UUID strings.
type UUIDGenerator struct{}

// New returns the default generator.
func New() UUIDGenerator {
	return UUIDGenerator{}
}

// NewID returns a fresh UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}
