package wallet

import (
	"encoding/json"
	"fmt"
	"os"
)

// SaveEncrypted writes the account JSON encrypted under password.
func (a *Account) SaveEncrypted(path string, password []byte, params EncryptionParams) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal account: %w", err)
	}
	encrypted, err := Encrypt(data, password, params)
	if err != nil {
		return fmt.Errorf("encrypt account: %w", err)
	}
	return os.WriteFile(path, encrypted, 0600)
}

// LoadEncrypted reads an account saved by SaveEncrypted. A wrong
// password fails authentication and surfaces as a decrypt error.
func LoadEncrypted(path string, password []byte) (*Account, error) {
	encrypted, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data, err := Decrypt(encrypted, password)
	if err != nil {
		return nil, fmt.Errorf("decrypt account file: %w", err)
	}
	var a Account
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse account file: %w", err)
	}
	return &a, nil
}
