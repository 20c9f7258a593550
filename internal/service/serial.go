package service

import (
	"strings"

	apperrors "aircraft-manufacturing-backend/internal/errors"

	"github.com/google/uuid"
)

// Serial numbers are a persisted contract: parts are P-XXXXXXXX and aircraft
// A-XXXXXXXX where X is an uppercase hex digit.
const (
	PartSerialPrefix     = "P-"
	AircraftSerialPrefix = "A-"

	serialSuffixLength = 8

	// The 16^8 key space makes collisions rare; the bound exists so that a
	// pathologically full table fails loudly instead of looping forever.
	maxSerialAttempts = 5
)

// generateSerialNumber draws random serials until one is free, up to
// maxSerialAttempts. The caller still owns the race window between the
// uniqueness probe and the insert; the unique index on the serial column is
// the final arbiter.
func generateSerialNumber(prefix string, exists func(serial string) (bool, error)) (string, error) {
	for attempt := 0; attempt < maxSerialAttempts; attempt++ {
		serial := prefix + randomSerialSuffix()
		taken, err := exists(serial)
		if err != nil {
			return "", err
		}
		if !taken {
			return serial, nil
		}
	}
	return "", apperrors.ErrSerialGenerationExhausted
}

func randomSerialSuffix() string {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return hex[:serialSuffixLength]
}
