package hash

// Hasher turns a plain secret into a storable hash and checks plain secrets against it.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) (bool, error)
}
