package crawl

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// ContentHash computes an xxhash of the content and returns it as a hex
// string. Recorded per lesson so identical content can be spotted across
// crawls.
func ContentHash(content string) string {
	h := xxhash.Sum64String(content)
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], h)
	return hex.EncodeToString(b[:])
}
