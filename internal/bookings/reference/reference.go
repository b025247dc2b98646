// Package reference issues booking references: 128 random bits rendered as 32 lowercase hex
// characters.
package reference

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const Length = 32

var referencePattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

type UUIDGenerator struct{}

func NewGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewReference returns a version 4 UUID without dashes.
func (UUIDGenerator) NewReference() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(id.String(), "-", ""), nil
}

// Valid reports whether ref has the canonical reference shape.
func Valid(ref string) bool {
	return referencePattern.MatchString(ref)
}
