package project

import (
	"crypto/sha256"
)

// Digest - фиксированный 256 битный хеш (совместим с source.File.Hash)
type Digest [32]byte

// IsZero проверяет, что хеш не вычислялся.
func (d Digest) IsZero() bool {
	var z Digest
	return d == z
}

// Combine строит составной хеш: H( content || extra1 || extra2 ... ).
// Порядок extra должен быть детерминированным.
func Combine(content Digest, extra ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range extra {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
