package auth

import "golang.org/x/crypto/bcrypt"

// Comparer checks a supplied credential against its stored form. All
// credential checks in the app (staff gate, shopper login) go through
// this interface so the storage scheme can change without touching
// call sites.
type Comparer interface {
	Compare(stored, supplied string) bool
}

// PlaintextComparer matches the stored credential byte for byte. This
// is the wired default: passwords are kept as entered, a deliberate
// low-stakes choice carried over from the store's history.
type PlaintextComparer struct{}

func (PlaintextComparer) Compare(stored, supplied string) bool {
	return stored != "" && stored == supplied
}

// BcryptComparer treats the stored credential as a bcrypt hash. Swap
// it in for PlaintextComparer once credentials are migrated to hashes.
type BcryptComparer struct{}

func (BcryptComparer) Compare(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
