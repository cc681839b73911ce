package storage

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	saltKey  = "sealed-salt"
	saltSize = 16
)

// Sealed encrypts values with XChaCha20-Poly1305 before handing them to the
// wrapped store. The key is derived from a passphrase with argon2id and a
// random salt kept in the wrapped store. The stored key name is bound as
// additional data, so a value copied under another key fails to open.
type Sealed struct {
	inner KV
	aead  cipher.AEAD
}

func NewSealed(ctx context.Context, inner KV, passphrase string) (*Sealed, error) {
	if passphrase == "" {
		return nil, errors.New("storage: empty passphrase")
	}
	salt, err := inner.Get(ctx, saltKey)
	if errors.Is(err, ErrNotFound) {
		salt = make([]byte, saltSize)
		if _, err := rand.Read(salt); err != nil {
			return nil, fmt.Errorf("storage: generate salt: %w", err)
		}
		if err := inner.Set(ctx, saltKey, salt); err != nil {
			return nil, fmt.Errorf("storage: save salt: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("storage: load salt: %w", err)
	}

	key := argon2.IDKey([]byte(passphrase), salt, 1, 64*1024, 4, chacha20poly1305.KeySize)
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("storage: init cipher: %w", err)
	}
	return &Sealed{inner: inner, aead: aead}, nil
}

func (s *Sealed) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := s.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	ns := s.aead.NonceSize()
	if len(sealed) < ns+s.aead.Overhead() {
		return nil, fmt.Errorf("storage: sealed value for %s is truncated", key)
	}
	plain, err := s.aead.Open(nil, sealed[:ns], sealed[ns:], []byte(key))
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", key, err)
	}
	return plain, nil
}

func (s *Sealed) Set(ctx context.Context, key string, value []byte) error {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(value)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("storage: generate nonce: %w", err)
	}
	return s.inner.Set(ctx, key, s.aead.Seal(nonce, nonce, value, []byte(key)))
}

func (s *Sealed) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}
