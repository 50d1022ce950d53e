package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	bookingNumberPrefix = "RENTAL"
	base36Alphabet      = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixLength        = 6
)

// GenerateBookingNumber produces a human-scannable booking number of the form
// RENTAL-<base36 unix millis>-<6 random base36 chars>, upper-cased. Collisions
// are merely improbable, not impossible; the store's unique constraint on
// booking_number is the actual uniqueness backstop.
func GenerateBookingNumber() string {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)

	suffix := make([]byte, suffixLength)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36Alphabet))))
		if err != nil {
			// crypto/rand failing means no entropy source at all; fall back
			// to a timestamp-derived digit rather than aborting a booking.
			suffix[i] = base36Alphabet[int(time.Now().UnixNano())%len(base36Alphabet)]
			continue
		}
		suffix[i] = base36Alphabet[n.Int64()]
	}

	return strings.ToUpper(fmt.Sprintf("%s-%s-%s", bookingNumberPrefix, timestamp, suffix))
}
