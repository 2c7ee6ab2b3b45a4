// Package auth stores CMS credentials in the system keyring.
package auth

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const service = "folio"

// Secret names a credential kept in the keyring.
type Secret string

const (
	// SanityToken is the read token for private Sanity datasets.
	SanityToken Secret = "sanity-token"
	// RevalidateSecret guards the cache revalidation webhook.
	RevalidateSecret Secret = "revalidate-secret"
)

// Secrets lists every known credential.
func Secrets() []Secret {
	return []Secret{SanityToken, RevalidateSecret}
}

func Set(s Secret, value string) error {
	return keyring.Set(service, string(s), value)
}

// Get returns the stored value, or "" with a nil error when nothing is stored.
func Get(s Secret) (string, error) {
	v, err := keyring.Get(service, string(s))
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	return v, err
}

func Delete(s Secret) error {
	err := keyring.Delete(service, string(s))
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
