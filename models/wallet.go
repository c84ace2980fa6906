package models

// UserWallet is a snapshot of the currently signed-in wallet, read once at
// the start of every synchronization pass.
type UserWallet struct {
	// SeedPhrase is the recovery phrase the local metadata encryption key
	// is derived from. Never leaves the device.
	SeedPhrase string `json:"-"`

	// EthAddress is the Ethereum address of the wallet. Nil for wallets
	// created with a non-web3 auth method; such wallets carry no replicated
	// metadata.
	EthAddress *string `json:"eth_address,omitempty"`
}

// IsWeb3AuthUser reports whether the wallet is backed by a self-custodial
// Ethereum-style key.
func (w UserWallet) IsWeb3AuthUser() bool {
	return w.EthAddress != nil
}
