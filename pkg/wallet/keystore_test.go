package wallet

import (
	"bytes"
	"testing"

	"github.com/acryl-tech/acryl-go/pkg/types"
)

// fastParams keeps Argon2id cheap in tests.
func fastParams() EncryptionParams {
	return EncryptionParams{Memory: 64, Iterations: 1, Parallelism: 1}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	plaintext := []byte("account secret material")
	password := []byte("correct horse")

	encrypted, err := Encrypt(plaintext, password, fastParams())
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if bytes.Contains(encrypted, plaintext) {
		t.Error("ciphertext should not contain the plaintext")
	}

	decrypted, err := Decrypt(encrypted, password)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Error("round-trip mismatch")
	}
}

func TestDecrypt_WrongPassword(t *testing.T) {
	encrypted, err := Encrypt([]byte("data"), []byte("right"), fastParams())
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if _, err := Decrypt(encrypted, []byte("wrong")); err == nil {
		t.Error("decryption with a wrong password should fail")
	}
}

func TestDecrypt_TruncatedInput(t *testing.T) {
	if _, err := Decrypt([]byte("short"), []byte("pw")); err == nil {
		t.Error("truncated ciphertext should be rejected")
	}
}

func TestDecrypt_TamperedCiphertext(t *testing.T) {
	encrypted, err := Encrypt([]byte("data"), []byte("pw"), fastParams())
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	encrypted[len(encrypted)-1] ^= 0x01
	if _, err := Decrypt(encrypted, []byte("pw")); err == nil {
		t.Error("tampered ciphertext should fail authentication")
	}
}

func TestEncrypt_FreshSaltAndNonce(t *testing.T) {
	a, err := Encrypt([]byte("data"), []byte("pw"), fastParams())
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	b, err := Encrypt([]byte("data"), []byte("pw"), fastParams())
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Error("two encryptions of the same data should differ")
	}
}

func TestSaveLoadEncrypted(t *testing.T) {
	acc, err := NewAccountFromSeed("test seed phrase", 0, types.MainnetChainID)
	if err != nil {
		t.Fatalf("NewAccountFromSeed error: %v", err)
	}
	path := t.TempDir() + "/account.enc"
	password := []byte("keystore pw")

	if err := acc.SaveEncrypted(path, password, fastParams()); err != nil {
		t.Fatalf("SaveEncrypted error: %v", err)
	}

	loaded, err := LoadEncrypted(path, password)
	if err != nil {
		t.Fatalf("LoadEncrypted error: %v", err)
	}
	if loaded.Address != acc.Address {
		t.Error("address lost in encrypted round-trip")
	}
	if loaded.Keys.Private != acc.Keys.Private {
		t.Error("private key lost in encrypted round-trip")
	}

	if _, err := LoadEncrypted(path, []byte("not the password")); err == nil {
		t.Error("loading with a wrong password should fail")
	}
}
