package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Source is a draw source that always yields the same index for a date.
// It satisfies words.Source.
type Source struct {
	date string
	salt []byte
}

// NewSource keys the daily draw by date and salt.
func NewSource(date time.Time, salt string) Source {
	return Source{date: DateKey(date), salt: []byte(salt)}
}

// Date returns the date key the source was built for.
func (s Source) Date() string { return s.date }

// IntN returns BLAKE2b-256(key=salt, date) mod n. n must be positive.
func (s Source) IntN(n int) int {
	if n <= 0 {
		panic("daily: invalid argument to IntN")
	}
	// blake2b keys are limited to 64 bytes; longer salts are hashed first.
	key := s.salt
	if len(key) > blake2b.Size {
		sum := blake2b.Sum512(key)
		key = sum[:]
	}
	h, err := blake2b.New256(key)
	if err != nil {
		panic(err)
	}
	h.Write([]byte(s.date))
	sum := h.Sum(nil)
	// first 8 bytes give enough spread for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}
