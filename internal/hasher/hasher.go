package hasher

import (
	"encoding/binary"
	"encoding/hex"
	"io"

	"github.com/cespare/xxhash/v2"
)

// ContentHash computes the xxHash64 of data and returns a hex string
// truncated to the given length. The manifest records 16 hex chars
// (64 bits), enough for an icon set's handful of files.
func ContentHash(data []byte, hexLen int) string {
	return truncate(hex.EncodeToString(sumBytes(xxhash.Sum64(data))), hexLen)
}

// ContentHashReader computes xxHash64 from a reader, streaming. Used by
// validate to re-hash files already on disk.
func ContentHashReader(r io.Reader, hexLen int) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return truncate(hex.EncodeToString(sumBytes(h.Sum64())), hexLen), nil
}

func truncate(s string, hexLen int) string {
	if hexLen > 0 && hexLen < len(s) {
		return s[:hexLen]
	}
	return s
}

func sumBytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
