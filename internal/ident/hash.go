package ident

import (
	"crypto/md5"  // #nosec G501 -- ids, not security
	"crypto/sha1" // #nosec G505 -- ids, not security
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// Algorithm selects the digest function of a placeholder.
type Algorithm uint8

const (
	MD5 Algorithm = iota
	SHA1
	SHA256
	SHA384
	SHA512
)

var algorithmNames = [...]string{
	MD5:    "md5",
	SHA1:   "sha1",
	SHA256: "sha256",
	SHA384: "sha384",
	SHA512: "sha512",
}

func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return "unknown"
}

// LookupAlgorithm resolves a hash name as written in a pattern.
func LookupAlgorithm(name string) (Algorithm, bool) {
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), true
		}
	}
	return 0, false
}

func (a Algorithm) new() hash.Hash {
	switch a {
	case MD5:
		return md5.New() // #nosec G401
	case SHA1:
		return sha1.New() // #nosec G401
	case SHA256:
		return sha256.New()
	case SHA384:
		return sha512.New384()
	default:
		return sha512.New()
	}
}

// Sum returns the digest of data.
func (a Algorithm) Sum(data []byte) []byte {
	h := a.new()
	_, _ = h.Write(data)
	return h.Sum(nil)
}
