package uuid

import (
	"crypto/rand"
	"fmt"
)

// Gen generates a random id string.
func Gen() string {
	buf := make([]byte, 12)
	rand.Read(buf)

	return fmt.Sprintf("%x-%x-%x", buf[0:4], buf[4:8], buf[8:])
}
