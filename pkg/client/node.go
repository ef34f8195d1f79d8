package client

import "encoding/json"

// AssetBalance is one entry of an address's asset portfolio.
type AssetBalance struct {
	AssetID    string `json:"assetId"`
	Balance    uint64 `json:"balance"`
	Reissuable bool   `json:"reissuable"`
	Quantity   uint64 `json:"quantity"`
}

// AssetsBalance returns the asset portfolio of an address.
func (c *Client) AssetsBalance(address string) ([]AssetBalance, error) {
	var out struct {
		Address  string         `json:"address"`
		Balances []AssetBalance `json:"balances"`
	}
	if err := c.get("/assets/balance/"+address, &out); err != nil {
		return nil, err
	}
	return out.Balances, nil
}

// AssetBalanceByID returns the balance of a single asset for an address.
func (c *Client) AssetBalanceByID(address, assetID string) (uint64, error) {
	var out struct {
		Address string `json:"address"`
		AssetID string `json:"assetId"`
		Balance uint64 `json:"balance"`
	}
	if err := c.get("/assets/balance/"+address+"/"+assetID, &out); err != nil {
		return 0, err
	}
	return out.Balance, nil
}

// AliasesByAddress returns the aliases registered to an address.
func (c *Client) AliasesByAddress(address string) ([]string, error) {
	var out []string
	if err := c.get("/alias/by-address/"+address, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ResolveAlias returns the address an alias points at.
func (c *Client) ResolveAlias(alias string) (string, error) {
	var out struct {
		Address string `json:"address"`
	}
	if err := c.get("/alias/by-alias/"+alias, &out); err != nil {
		return "", err
	}
	return out.Address, nil
}

// BlocksHeight returns the current chain height.
func (c *Client) BlocksHeight() (uint64, error) {
	var out struct {
		Height uint64 `json:"height"`
	}
	if err := c.get("/blocks/height", &out); err != nil {
		return 0, err
	}
	return out.Height, nil
}

// NodeTime holds the node's clock readings in unix milliseconds.
type NodeTime struct {
	System int64 `json:"system"`
	NTP    int64 `json:"NTP"`
}

// UtilsTime returns the node's current time.
func (c *Client) UtilsTime() (*NodeTime, error) {
	var out NodeTime
	if err := c.get("/utils/time", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TransactionInfo returns the raw JSON of a confirmed transaction.
func (c *Client) TransactionInfo(id string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.get("/transactions/info/"+id, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnconfirmedSize returns the number of transactions waiting in the pool.
func (c *Client) UnconfirmedSize() (int, error) {
	var out struct {
		Size int `json:"size"`
	}
	if err := c.get("/transactions/unconfirmed/size", &out); err != nil {
		return 0, err
	}
	return out.Size, nil
}
