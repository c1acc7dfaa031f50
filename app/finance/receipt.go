package finance

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateReceiptNumber builds an RCP-YYYYMMDD-NNNNN receipt number from
// the payment's effective date plus a 5-digit random sequence. Uniqueness
// is per record, not globally enforced.
func GenerateReceiptNumber(date time.Time) string {
	if date.IsZero() {
		date = time.Now()
	}
	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	if err != nil {
		return fmt.Sprintf("RCP-%s-%05d", date.Format("20060102"), time.Now().UnixNano()%100000)
	}
	return fmt.Sprintf("RCP-%s-%05d", date.Format("20060102"), n.Int64())
}
