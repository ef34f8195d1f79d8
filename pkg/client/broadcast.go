package client

import (
	"github.com/acryl-tech/acryl-go/pkg/tx"
)

// Broadcast submits a signed transaction through the generic route and
// returns the node's view of it.
func (c *Client) Broadcast(signed tx.Signed) (tx.Signed, error) {
	return c.broadcast("/transactions/broadcast", signed)
}

// BroadcastTransfer submits a signed transfer through the typed route.
func (c *Client) BroadcastTransfer(signed tx.Signed) (tx.Signed, error) {
	return c.broadcast("/assets/broadcast/transfer", signed)
}

// BroadcastIssue submits a signed issue through the typed route.
func (c *Client) BroadcastIssue(signed tx.Signed) (tx.Signed, error) {
	return c.broadcast("/assets/broadcast/issue", signed)
}

// BroadcastReissue submits a signed reissue through the typed route.
func (c *Client) BroadcastReissue(signed tx.Signed) (tx.Signed, error) {
	return c.broadcast("/assets/broadcast/reissue", signed)
}

// BroadcastBurn submits a signed burn through the typed route.
func (c *Client) BroadcastBurn(signed tx.Signed) (tx.Signed, error) {
	return c.broadcast("/assets/broadcast/burn", signed)
}

// BroadcastLease submits a signed lease through the typed route.
func (c *Client) BroadcastLease(signed tx.Signed) (tx.Signed, error) {
	return c.broadcast("/leasing/broadcast/lease", signed)
}

// BroadcastLeaseCancel submits a signed lease cancellation through the
// typed route.
func (c *Client) BroadcastLeaseCancel(signed tx.Signed) (tx.Signed, error) {
	return c.broadcast("/leasing/broadcast/cancel", signed)
}

// BroadcastAlias submits a signed alias registration through the typed
// route.
func (c *Client) BroadcastAlias(signed tx.Signed) (tx.Signed, error) {
	return c.broadcast("/alias/broadcast/create", signed)
}

func (c *Client) broadcast(path string, signed tx.Signed) (tx.Signed, error) {
	var out tx.Signed
	if err := c.post(path, signed, &out); err != nil {
		return nil, err
	}
	return out, nil
}
