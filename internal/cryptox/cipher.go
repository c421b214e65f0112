// Package cryptox holds the credential-security primitives: the symmetric
// cipher protecting stored passwords, the PIN hasher, and the password
// generator.
//
// The cipher is AES-256-CBC with PKCS7 padding and no integrity tag. That
// format is kept for compatibility with existing ciphertext; it provides
// confidentiality only, and a tampered blob surfaces as ErrDecryption at
// padding validation rather than as an explicit integrity failure.
package cryptox

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrDecryption marks ciphertext that cannot be decrypted: bad base64, a blob
// shorter than one IV, or padding that fails validation. Match with errors.Is.
var ErrDecryption = errors.New("cryptox: invalid ciphertext")

// Cipher encrypts and decrypts secret strings under a key derived once from a
// configured passphrase. It is immutable after construction and safe for
// concurrent use.
type Cipher struct {
	key []byte
}

// NewCipher derives a 32-byte AES key from the passphrase with SHA-256, so
// operators can supply human-memorable secrets while the cipher gets
// full-entropy key material.
func NewCipher(passphrase string) *Cipher {
	key := sha256.Sum256([]byte(passphrase))
	return &Cipher{key: key[:]}
}

// Encrypt encrypts plaintext with a fresh random IV and returns
// base64(IV || ciphertext). The empty string maps to the empty string and is
// never actually encrypted.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, aes.BlockSize+len(padded))
	copy(out, iv)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[aes.BlockSize:], padded)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt. The empty string maps to the empty string;
// anything else that is not a well-formed blob produced under the same key
// yields ErrDecryption.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	if len(raw) < aes.BlockSize || (len(raw)-aes.BlockSize)%aes.BlockSize != 0 || len(raw) == aes.BlockSize {
		return "", fmt.Errorf("%w: truncated blob", ErrDecryption)
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}

	iv, body := raw[:aes.BlockSize], raw[aes.BlockSize:]
	plain := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, body)

	unpadded, err := pkcs7Unpad(plain, aes.BlockSize)
	if err != nil {
		return "", err
	}
	return string(unpadded), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: bad padded length", ErrDecryption)
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("%w: bad padding", ErrDecryption)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: bad padding", ErrDecryption)
		}
	}
	return data[:len(data)-n], nil
}
