package client

import "strconv"

// Balance is a plain balance response.
type Balance struct {
	Address       string `json:"address"`
	Confirmations int    `json:"confirmations"`
	Balance       uint64 `json:"balance"`
}

// BalanceDetails breaks a balance down by availability.
type BalanceDetails struct {
	Address    string `json:"address"`
	Regular    uint64 `json:"regular"`
	Generating uint64 `json:"generating"`
	Available  uint64 `json:"available"`
	Effective  uint64 `json:"effective"`
}

// DataEntry is a key/value entry stored under an address.
type DataEntry struct {
	Key   string `json:"key"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// AddressBalance returns the confirmed balance of an address.
func (c *Client) AddressBalance(address string) (*Balance, error) {
	var out Balance
	if err := c.get("/addresses/balance/"+address, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddressEffectiveBalance returns the effective balance of an address.
func (c *Client) AddressEffectiveBalance(address string) (*Balance, error) {
	var out Balance
	if err := c.get("/addresses/effectiveBalance/"+address, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddressBalanceConfirmed returns the balance at the given confirmation depth.
func (c *Client) AddressBalanceConfirmed(address string, confirmations int) (*Balance, error) {
	var out Balance
	path := "/addresses/balance/" + address + "/" + strconv.Itoa(confirmations)
	if err := c.get(path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddressBalanceDetails returns the balance breakdown of an address.
func (c *Client) AddressBalanceDetails(address string) (*BalanceDetails, error) {
	var out BalanceDetails
	if err := c.get("/addresses/balance/details/"+address, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddressData returns all data entries stored under an address.
func (c *Client) AddressData(address string) ([]DataEntry, error) {
	var out []DataEntry
	if err := c.get("/addresses/data/"+address, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddressDataKey returns a single data entry stored under an address.
func (c *Client) AddressDataKey(address, key string) (*DataEntry, error) {
	var out DataEntry
	if err := c.get("/addresses/data/"+address+"/"+key, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddressValidate asks the node whether an address is structurally valid.
func (c *Client) AddressValidate(address string) (bool, error) {
	var out struct {
		Address string `json:"address"`
		Valid   bool   `json:"valid"`
	}
	if err := c.get("/addresses/validate/"+address, &out); err != nil {
		return false, err
	}
	return out.Valid, nil
}
