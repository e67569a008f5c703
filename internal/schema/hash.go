package schema

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// DomainSchema separates schema hashes from any other hash msgc computes.
const DomainSchema = "msgc/schema/v1"

// hashWithDomain computes SHA256(domain + 0x00 + part0 + 0x00 + part1 ...).
func hashWithDomain(domain string, parts ...[]byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	for _, p := range parts {
		h.Write([]byte{0x00})
		h.Write(p)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Hash returns a content hash of s together with any generation options
// that influence the output (package name, runtime import, ...).
// Equal inputs always produce equal hashes.
func Hash(s *Schema, options ...string) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("hash schema: %w", err)
	}
	parts := [][]byte{data}
	for _, o := range options {
		parts = append(parts, []byte(o))
	}
	return hashWithDomain(DomainSchema, parts...), nil
}
