package security

import (
	"encoding/hex"
	"net"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// IPHasher : псевдонимизирует IP гостя перед записью в журнал согласий
type IPHasher struct {
	key []byte
}

func NewIPHasher(key string) *IPHasher {
	return &IPHasher{key: []byte(key)}
}

func (h *IPHasher) Hash(remoteAddr string) string {
	ip := remoteAddr
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		ip = host
	}
	ip = strings.TrimSpace(ip)
	if ip == "" {
		return ""
	}

	var key []byte
	if len(h.key) > 0 {
		key = h.key
		if len(key) > blake2b.Size {
			key = key[:blake2b.Size]
		}
	}

	hasher, err := blake2b.New256(key)
	if err != nil {
		return ""
	}
	hasher.Write([]byte(ip))
	return hex.EncodeToString(hasher.Sum(nil))
}
