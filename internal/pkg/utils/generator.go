package utils

import (
	"serenia-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateEntityID returns a canonical 8-4-4-4-12 hyphenated lowercase-hex
// identifier. Submission ids produced here are what the identifier resolver
// pattern-matches against.
func GenerateEntityID() string {
	return uuid.NewString()
}
