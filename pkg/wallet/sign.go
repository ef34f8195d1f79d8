package wallet

import (
	"github.com/acryl-tech/acryl-go/pkg/tx"
)

// Signing front-ends. Each fills the sender public key (and chain id
// where the wire format carries one), applies the account's default fee
// when the draft leaves it zero, and signs. All fail with
// ErrSigningKeyRequired on watch-only accounts before anything is built.

func (a *Account) signable() error {
	if !a.CanSign() {
		return ErrSigningKeyRequired
	}
	return nil
}

// SignTransfer signs a transfer of the native token or an asset.
func (a *Account) SignTransfer(t tx.Transfer) (tx.Signed, error) {
	if err := a.signable(); err != nil {
		return nil, err
	}
	t.SenderPublicKey = a.Keys.Public
	if t.Fee == 0 {
		t.Fee = a.Fees.Transfer
	}
	return tx.Sign(t, a.Keys.Private)
}

// SignLease signs a lease to a recipient.
func (a *Account) SignLease(t tx.Lease) (tx.Signed, error) {
	if err := a.signable(); err != nil {
		return nil, err
	}
	t.SenderPublicKey = a.Keys.Public
	if t.Fee == 0 {
		t.Fee = a.Fees.Lease
	}
	return tx.Sign(t, a.Keys.Private)
}

// SignLeaseCancel signs a lease cancellation.
func (a *Account) SignLeaseCancel(t tx.LeaseCancel) (tx.Signed, error) {
	if err := a.signable(); err != nil {
		return nil, err
	}
	t.SenderPublicKey = a.Keys.Public
	if t.Fee == 0 {
		t.Fee = a.Fees.LeaseCancel
	}
	return tx.Sign(t, a.Keys.Private)
}

// SignAlias signs an alias registration for this account's chain.
func (a *Account) SignAlias(t tx.Alias) (tx.Signed, error) {
	if err := a.signable(); err != nil {
		return nil, err
	}
	t.SenderPublicKey = a.Keys.Public
	t.ChainID = a.ChainID
	if t.Fee == 0 {
		t.Fee = a.Fees.Alias
	}
	return tx.Sign(t, a.Keys.Private)
}

// SignIssue signs an asset issue. A draft carrying a script must also
// carry version 2 or higher; the guard fires before signing.
func (a *Account) SignIssue(t tx.Issue) (tx.Signed, error) {
	if err := a.signable(); err != nil {
		return nil, err
	}
	t.SenderPublicKey = a.Keys.Public
	t.ChainID = a.ChainID
	if t.Fee == 0 {
		t.Fee = a.Fees.Issue
	}
	return tx.Sign(t, a.Keys.Private)
}

// SignReissue signs an asset reissue.
func (a *Account) SignReissue(t tx.Reissue) (tx.Signed, error) {
	if err := a.signable(); err != nil {
		return nil, err
	}
	t.SenderPublicKey = a.Keys.Public
	if t.Fee == 0 {
		t.Fee = a.Fees.Reissue
	}
	return tx.Sign(t, a.Keys.Private)
}

// SignBurn signs an asset burn.
func (a *Account) SignBurn(t tx.Burn) (tx.Signed, error) {
	if err := a.signable(); err != nil {
		return nil, err
	}
	t.SenderPublicKey = a.Keys.Public
	if t.Fee == 0 {
		t.Fee = a.Fees.Burn
	}
	return tx.Sign(t, a.Keys.Private)
}

// SignMassTransfer signs a mass transfer. The fee is computed from the
// recipient count.
func (a *Account) SignMassTransfer(t tx.MassTransfer) (tx.Signed, error) {
	if err := a.signable(); err != nil {
		return nil, err
	}
	t.SenderPublicKey = a.Keys.Public
	return tx.Sign(t, a.Keys.Private)
}

// SignData signs a data transaction. The fee is computed from the
// serialized entries.
func (a *Account) SignData(t tx.Data) (tx.Signed, error) {
	if err := a.signable(); err != nil {
		return nil, err
	}
	t.SenderPublicKey = a.Keys.Public
	return tx.Sign(t, a.Keys.Private)
}

// SignSponsorship signs an asset sponsorship.
func (a *Account) SignSponsorship(t tx.Sponsorship) (tx.Signed, error) {
	if err := a.signable(); err != nil {
		return nil, err
	}
	t.SenderPublicKey = a.Keys.Public
	if t.Fee == 0 {
		t.Fee = a.Fees.Sponsorship
	}
	return tx.Sign(t, a.Keys.Private)
}

// SignSetScript signs an account script update.
func (a *Account) SignSetScript(t tx.SetScript) (tx.Signed, error) {
	if err := a.signable(); err != nil {
		return nil, err
	}
	t.SenderPublicKey = a.Keys.Public
	t.ChainID = a.ChainID
	if t.Fee == 0 {
		t.Fee = a.Fees.SetScript
	}
	return tx.Sign(t, a.Keys.Private)
}

// SignSetAssetScript signs an asset script update.
func (a *Account) SignSetAssetScript(t tx.SetAssetScript) (tx.Signed, error) {
	if err := a.signable(); err != nil {
		return nil, err
	}
	t.SenderPublicKey = a.Keys.Public
	t.ChainID = a.ChainID
	if t.Fee == 0 {
		t.Fee = a.Fees.SetAssetScript
	}
	return tx.Sign(t, a.Keys.Private)
}
