// Package credentials remembers judge passwords in the OS keychain so
// `login --remember` does not have to prompt again.
package credentials

import (
	"errors"

	"online-judge-toolchain/internal/components/failure"

	"github.com/zalando/go-keyring"
)

const keyringService = "online-judge-toolchain"

var (
	keyringSet    = keyring.Set
	keyringGet    = keyring.Get
	keyringDelete = keyring.Delete
)

// Store keeps one password per (service, username) pair.
type Store struct {
	// Prefix namespaces the keychain entries, defaults to
	// "online-judge-toolchain".
	Prefix string
}

func NewStore() Store {
	return Store{Prefix: keyringService}
}

func (s Store) entry(service string) string {
	prefix := s.Prefix
	if prefix == "" {
		prefix = keyringService
	}
	return prefix + "/" + service
}

func (s Store) Save(service, username, password string) error {
	err := keyringSet(s.entry(service), username, password)
	if err != nil {
		return failure.New(failure.KindKeychain, "save credentials", err)
	}
	return nil
}

// Get returns the remembered password, found is false when nothing was
// saved for the pair.
func (s Store) Get(service, username string) (password string, found bool, err error) {
	password, err = keyringGet(s.entry(service), username)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, failure.New(failure.KindKeychain, "read credentials", err)
	}
	return password, true, nil
}

// Delete forgets the password, deleting a pair that was never saved is not
// an error.
func (s Store) Delete(service, username string) error {
	err := keyringDelete(s.entry(service), username)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return failure.New(failure.KindKeychain, "delete credentials", err)
	}
	return nil
}
