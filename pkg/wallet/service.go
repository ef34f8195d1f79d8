package wallet

import (
	"github.com/acryl-tech/acryl-go/pkg/tx"
)

// Broadcaster submits signed transactions to a node. *client.Client
// implements it. Version 1 transactions go through the typed routes the
// node exposes for them; proofs-based transactions use the generic one.
type Broadcaster interface {
	Broadcast(tx.Signed) (tx.Signed, error)
	BroadcastTransfer(tx.Signed) (tx.Signed, error)
	BroadcastIssue(tx.Signed) (tx.Signed, error)
	BroadcastReissue(tx.Signed) (tx.Signed, error)
	BroadcastBurn(tx.Signed) (tx.Signed, error)
	BroadcastLease(tx.Signed) (tx.Signed, error)
	BroadcastLeaseCancel(tx.Signed) (tx.Signed, error)
	BroadcastAlias(tx.Signed) (tx.Signed, error)
}

// AliasResolver resolves an alias to an address string. *client.Client
// implements it.
type AliasResolver interface {
	ResolveAlias(alias string) (string, error)
}

// NewAccountFromAlias resolves an alias through a node and builds a
// watch-only account for the returned address.
func NewAccountFromAlias(r AliasResolver, alias string) (*Account, error) {
	address, err := r.ResolveAlias(alias)
	if err != nil {
		return nil, err
	}
	return NewWatchAccount(address)
}

// TransferAcryl signs and broadcasts a transfer of the native token.
func (a *Account) TransferAcryl(b Broadcaster, recipient string, amount, fee uint64, attachment string) (tx.Signed, error) {
	signed, err := a.SignTransfer(tx.Transfer{
		Recipient:  recipient,
		Amount:     amount,
		Fee:        fee,
		Attachment: attachment,
	})
	if err != nil {
		return nil, err
	}
	return b.BroadcastTransfer(signed)
}

// TransferAsset signs and broadcasts an asset transfer.
func (a *Account) TransferAsset(b Broadcaster, recipient, assetID, feeAssetID string, amount, fee uint64, attachment string) (tx.Signed, error) {
	signed, err := a.SignTransfer(tx.Transfer{
		Recipient:  recipient,
		Amount:     amount,
		Fee:        fee,
		AssetID:    assetID,
		FeeAssetID: feeAssetID,
		Attachment: attachment,
	})
	if err != nil {
		return nil, err
	}
	return b.BroadcastTransfer(signed)
}

// MassTransferAcryl signs and broadcasts a mass transfer of the native
// token. The fee comes from the recipient count.
func (a *Account) MassTransferAcryl(b Broadcaster, transfers []tx.MassTransferItem, attachment string) (tx.Signed, error) {
	signed, err := a.SignMassTransfer(tx.MassTransfer{
		Transfers:  transfers,
		Attachment: attachment,
	})
	if err != nil {
		return nil, err
	}
	return b.Broadcast(signed)
}

// MassTransferAssets signs and broadcasts a mass transfer of an asset.
func (a *Account) MassTransferAssets(b Broadcaster, transfers []tx.MassTransferItem, assetID, attachment string) (tx.Signed, error) {
	signed, err := a.SignMassTransfer(tx.MassTransfer{
		Transfers:  transfers,
		AssetID:    assetID,
		Attachment: attachment,
	})
	if err != nil {
		return nil, err
	}
	return b.Broadcast(signed)
}

// LeaseAcryl signs and broadcasts a lease.
func (a *Account) LeaseAcryl(b Broadcaster, recipient string, amount, fee uint64) (tx.Signed, error) {
	signed, err := a.SignLease(tx.Lease{
		Recipient: recipient,
		Amount:    amount,
		Fee:       fee,
	})
	if err != nil {
		return nil, err
	}
	return b.BroadcastLease(signed)
}

// LeaseCancel signs and broadcasts a lease cancellation.
func (a *Account) LeaseCancel(b Broadcaster, leaseID string, fee uint64) (tx.Signed, error) {
	signed, err := a.SignLeaseCancel(tx.LeaseCancel{
		LeaseID: leaseID,
		Fee:     fee,
	})
	if err != nil {
		return nil, err
	}
	return b.BroadcastLeaseCancel(signed)
}

// CreateAlias signs and broadcasts an alias registration.
func (a *Account) CreateAlias(b Broadcaster, alias string, fee uint64) (tx.Signed, error) {
	signed, err := a.SignAlias(tx.Alias{
		Alias: alias,
		Fee:   fee,
	})
	if err != nil {
		return nil, err
	}
	return b.BroadcastAlias(signed)
}

// IssueAsset signs and broadcasts a plain asset issue.
func (a *Account) IssueAsset(b Broadcaster, name, description string, quantity uint64, decimals byte, reissuable bool, fee uint64) (tx.Signed, error) {
	signed, err := a.SignIssue(tx.Issue{
		Name:        name,
		Description: description,
		Quantity:    quantity,
		Decimals:    decimals,
		Reissuable:  reissuable,
		Fee:         fee,
	})
	if err != nil {
		return nil, err
	}
	return b.BroadcastIssue(signed)
}

// IssueSmartAsset signs and broadcasts a scripted asset issue. Script
// support requires version 2, which carries proofs and goes through the
// generic broadcast route.
func (a *Account) IssueSmartAsset(b Broadcaster, name, description string, quantity uint64, decimals byte, reissuable bool, script string, fee uint64) (tx.Signed, error) {
	signed, err := a.SignIssue(tx.Issue{
		Name:        name,
		Description: description,
		Quantity:    quantity,
		Decimals:    decimals,
		Reissuable:  reissuable,
		Script:      script,
		Version:     2,
		Fee:         fee,
	})
	if err != nil {
		return nil, err
	}
	return b.Broadcast(signed)
}

// ReissueAsset signs and broadcasts a reissue.
func (a *Account) ReissueAsset(b Broadcaster, assetID string, quantity uint64, reissuable bool, fee uint64) (tx.Signed, error) {
	signed, err := a.SignReissue(tx.Reissue{
		AssetID:    assetID,
		Quantity:   quantity,
		Reissuable: reissuable,
		Fee:        fee,
	})
	if err != nil {
		return nil, err
	}
	return b.BroadcastReissue(signed)
}

// BurnAsset signs and broadcasts a burn.
func (a *Account) BurnAsset(b Broadcaster, assetID string, quantity, fee uint64) (tx.Signed, error) {
	signed, err := a.SignBurn(tx.Burn{
		AssetID:  assetID,
		Quantity: quantity,
		Fee:      fee,
	})
	if err != nil {
		return nil, err
	}
	return b.BroadcastBurn(signed)
}

// DataTransaction signs and broadcasts a data transaction.
func (a *Account) DataTransaction(b Broadcaster, entries []tx.DataEntry) (tx.Signed, error) {
	signed, err := a.SignData(tx.Data{Entries: entries})
	if err != nil {
		return nil, err
	}
	return b.Broadcast(signed)
}

// SponsorAsset signs and broadcasts an asset sponsorship.
func (a *Account) SponsorAsset(b Broadcaster, assetID string, minSponsoredAssetFee, fee uint64) (tx.Signed, error) {
	signed, err := a.SignSponsorship(tx.Sponsorship{
		AssetID:              assetID,
		MinSponsoredAssetFee: minSponsoredAssetFee,
		Fee:                  fee,
	})
	if err != nil {
		return nil, err
	}
	return b.Broadcast(signed)
}

// SetScript signs and broadcasts an account script update.
func (a *Account) SetScript(b Broadcaster, script string, fee uint64) (tx.Signed, error) {
	signed, err := a.SignSetScript(tx.SetScript{
		Script: script,
		Fee:    fee,
	})
	if err != nil {
		return nil, err
	}
	return b.Broadcast(signed)
}

// SetAssetScript signs and broadcasts an asset script update.
func (a *Account) SetAssetScript(b Broadcaster, assetID, script string, fee uint64) (tx.Signed, error) {
	signed, err := a.SignSetAssetScript(tx.SetAssetScript{
		AssetID: assetID,
		Script:  script,
		Fee:     fee,
	})
	if err != nil {
		return nil, err
	}
	return b.Broadcast(signed)
}
