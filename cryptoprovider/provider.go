package cryptoprovider

// Provider wraps a payload into opaque ciphertext before embedding, and
// recovers it after extraction. The engine never inspects the framing
// this produces.
type Provider interface {
	Encrypt(plaintext []byte) (ciphertext []byte, err error)
	Decrypt(ciphertext []byte) (plaintext []byte, err error)
}
