package twokeymap

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrDuplicateKey is matched by every error returned from a failed Insert.
var ErrDuplicateKey = errors.New("duplicate key")

// DuplicateKeyError is returned by Insert when the key pair is already stored.
type DuplicateKeyError[K1 comparable, K2 comparable] struct {
	Key1 K1
	Key2 K2
}

func (e *DuplicateKeyError[K1, K2]) Error() string {
	return fmt.Sprintf("duplicate key (%v, %v)", e.Key1, e.Key2)
}

func (e *DuplicateKeyError[K1, K2]) Unwrap() error {
	return ErrDuplicateKey
}

func duplicateKey[K1 comparable, K2 comparable](key1 K1, key2 K2) error {
	return errors.WithStack(&DuplicateKeyError[K1, K2]{Key1: key1, Key2: key2})
}
