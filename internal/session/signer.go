package session

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/blake2b"
)

var ErrBadSignature = errors.New("session: bad signature")

// Signer, ziyaretçi kimliklerini anahtarlı BLAKE2b ile imzalar.
type Signer struct {
	key []byte
}

// NewSigner, secret'tan 32 baytlık bir MAC anahtarı türetir.
func NewSigner(secret string) *Signer {
	k := blake2b.Sum256([]byte(secret))
	return &Signer{key: k[:]}
}

func (s *Signer) mac(value string) string {
	h, err := blake2b.New256(s.key)
	if err != nil {
		// 32 baytlık anahtar her zaman geçerlidir
		panic(err)
	}
	h.Write([]byte(value))
	return hex.EncodeToString(h.Sum(nil))
}

// Sign, "value.mac" biçiminde imzalı değer döndürür.
func (s *Signer) Sign(value string) string {
	return value + "." + s.mac(value)
}

// Verify, imzalı değeri doğrular ve ham değeri döndürür.
func (s *Signer) Verify(signed string) (string, error) {
	i := strings.LastIndexByte(signed, '.')
	if i <= 0 {
		return "", ErrBadSignature
	}
	value, sig := signed[:i], signed[i+1:]
	if subtle.ConstantTimeCompare([]byte(sig), []byte(s.mac(value))) != 1 {
		return "", ErrBadSignature
	}
	return value, nil
}
