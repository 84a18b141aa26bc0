package ident

import (
	"encoding/base64"
	"encoding/hex"
	"math/big"
	"strings"
)

// Encoding turns a digest into text.
type Encoding uint8

const (
	Hex Encoding = iota
	Base64
	Base26
	Base32
	Base36
	Base49
	Base52
	Base58
	Base62
	Base64URL
)

type encodingInfo struct {
	name  string
	table string
}

// Таблицы для baseNN совпадают с теми, что используют сборщики JS
// при интерполяции [hash:baseNN].
var encodings = [...]encodingInfo{
	Hex:       {name: "hex"},
	Base64:    {name: "base64"},
	Base26:    {name: "base26", table: "abcdefghijklmnopqrstuvwxyz"},
	Base32:    {name: "base32", table: "123456789abcdefghjkmnpqrstuvwxyz"},
	Base36:    {name: "base36", table: "0123456789abcdefghijklmnopqrstuvwxyz"},
	Base49:    {name: "base49", table: "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"},
	Base52:    {name: "base52", table: "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"},
	Base58:    {name: "base58", table: "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"},
	Base62:    {name: "base62", table: "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"},
	Base64URL: {name: "base64url"},
}

func (e Encoding) String() string {
	if int(e) < len(encodings) {
		return encodings[e].name
	}
	return "unknown"
}

// LookupEncoding resolves an encoding name as written in a pattern.
func LookupEncoding(name string) (Encoding, bool) {
	for i, info := range encodings {
		if info.name == name {
			return Encoding(i), true
		}
	}
	return 0, false
}

// Encode renders digest in this encoding.
func (e Encoding) Encode(digest []byte) string {
	switch e {
	case Hex:
		return hex.EncodeToString(digest)
	case Base64:
		return base64.StdEncoding.EncodeToString(digest)
	case Base64URL:
		return base64.RawURLEncoding.EncodeToString(digest)
	default:
		return encodeBase(digest, encodings[e].table)
	}
}

// encodeBase печатает digest как большое число, младшие разряды первыми;
// длина фиксирована для данного размера digest.
func encodeBase(digest []byte, table string) string {
	base := big.NewInt(int64(len(table)))
	n := new(big.Int).SetBytes(digest)
	width := digitsFor(len(digest), len(table))

	var sb strings.Builder
	sb.Grow(width)
	mod := new(big.Int)
	for range width {
		n.DivMod(n, base, mod)
		sb.WriteByte(table[mod.Int64()])
	}
	return sb.String()
}

// digitsFor returns ceil(bytes*8 / log2(base)).
func digitsFor(bytes, base int) int {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bytes*8))
	b := big.NewInt(int64(base))
	p := big.NewInt(1)
	n := 0
	for p.Cmp(limit) < 0 {
		p.Mul(p, b)
		n++
	}
	return n
}
