package order

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"
)

const (
	orderNumberPrefix  = "OBJ"
	orderNumberSuffix  = "CZ"
	orderNumberCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderNumberLength  = 10
)

// GenerateOrderNumber returns a human-readable order token of the form
// OBJ<10 alphanumerics>CZ. Collisions are possible; the unique constraint
// on orders.order_number rejects them at insert time.
func GenerateOrderNumber() string {
	var b strings.Builder
	b.WriteString(orderNumberPrefix)

	max := big.NewInt(int64(len(orderNumberCharset)))
	for i := 0; i < orderNumberLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// fallback: time-based entropy
			n = big.NewInt(time.Now().UnixNano() % int64(len(orderNumberCharset)))
		}
		b.WriteByte(orderNumberCharset[n.Int64()])
	}

	b.WriteString(orderNumberSuffix)
	return b.String()
}
