// Package hash derives short, filename safe fingerprints of generated content.
package hash

import (
	"encoding/binary"

	"github.com/minio/crc64nvme"
	"github.com/mr-tron/base58"
)

// Content returns a CRC64-NVME checksum of s encoded as base58.
func Content(s string) string {
	sum := make([]byte, 8)
	binary.BigEndian.PutUint64(sum, crc64nvme.Checksum([]byte(s)))
	return base58.Encode(sum)
}
