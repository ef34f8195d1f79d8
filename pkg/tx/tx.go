// Package tx builds, signs and encodes Acryl transactions.
//
// Each transaction kind is a value type carrying only its own fields.
// SigningBytes produces the exact canonical buffer a node verifies the
// signature against; Sign produces the JSON-ready field map handed to
// the transport, with binary values text-encoded (base58 for keys,
// signatures and ids, "base64:"-prefixed base64 for scripts).
package tx

import (
	"time"

	"github.com/acryl-tech/acryl-go/pkg/crypto"
)

// Type is the wire transaction type code.
type Type byte

// Transaction type codes.
const (
	TypeGenesis        Type = 1
	TypePayment        Type = 2
	TypeIssue          Type = 3
	TypeTransfer       Type = 4
	TypeReissue        Type = 5
	TypeBurn           Type = 6
	TypeExchange       Type = 7
	TypeLease          Type = 8
	TypeLeaseCancel    Type = 9
	TypeAlias          Type = 10
	TypeMassTransfer   Type = 11
	TypeData           Type = 12
	TypeSetScript      Type = 13
	TypeSponsorship    Type = 14
	TypeSetAssetScript Type = 15
	TypeInvokeScript   Type = 16
)

// DefaultVersion is the transaction version used when a draft leaves it unset.
const DefaultVersion byte = 1

// Signed is the JSON-ready record of a signed transaction, keyed by the
// node's transaction schema field names.
type Signed map[string]any

// Transaction is a transaction draft. The set of implementations is
// closed: one per wire transaction kind.
type Transaction interface {
	// Type returns the wire type code.
	Type() Type
	// SigningBytes builds the canonical byte buffer that is signed.
	SigningBytes() ([]byte, error)

	// normalize returns a copy with derived fields resolved (timestamp
	// defaulting, computed fees) against the given wall clock in ms.
	normalize(nowMillis int64) Transaction
	// signedJSON assembles the output field map around a base58 signature.
	signedJSON(signature string) (Signed, error)
}

// Sign resolves a draft's derived fields, builds its signable buffer,
// signs it and returns the JSON-ready record. The caller's draft is
// never mutated; guard failures surface before any signature is made.
func Sign(t Transaction, key crypto.PrivateKey) (Signed, error) {
	return signAt(t, key, time.Now().UnixMilli())
}

// signAt is Sign with an explicit clock, for tests.
func signAt(t Transaction, key crypto.PrivateKey, nowMillis int64) (Signed, error) {
	draft := t.normalize(nowMillis)
	buf, err := draft.SigningBytes()
	if err != nil {
		return nil, err
	}
	sig, err := crypto.Sign(key, buf)
	if err != nil {
		return nil, err
	}
	return draft.signedJSON(sig.String())
}

// defaultTimestamp substitutes the current time for a zero caller value.
func defaultTimestamp(ts, nowMillis int64) int64 {
	if ts == 0 {
		return nowMillis
	}
	return ts
}
