package contracts

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

var ErrInvalidAddress = errors.New("invalid contract address")

// Addresses of the protocol deployment the registrar talks to.
type Addresses struct {
	IPAssetRegistry common.Address
	LicensingModule common.Address
	PILTemplate     common.Address
	LicenseToken    common.Address
	RoyaltyPolicy   common.Address
	CurrencyToken   common.Address
}

// DefaultAddresses is the Story protocol testnet deployment.
func DefaultAddresses() Addresses {
	return Addresses{
		IPAssetRegistry: common.HexToAddress("0x77319B4031e6eF1250907aa00018B8B1c67a244b"),
		LicensingModule: common.HexToAddress("0x04fbd8a2e56dd85CFD5500A4A4DfA955B9f1dE6f"),
		PILTemplate:     common.HexToAddress("0x2E896b0b2Fdb7457499B56AAaA4AE55BCB4Cd316"),
		LicenseToken:    common.HexToAddress("0xFe3838BFb30B34170F00030B52eA4893d8aAC6bC"),
		RoyaltyPolicy:   common.HexToAddress("0xBe54FB168b3c982b7AaE60dB6CF75Bd8447b390E"),
		CurrencyToken:   common.HexToAddress("0xF2104833d386a2734a4eB3B8ad6FC6812F29E38E"),
	}
}

// WithOverrides replaces the addresses named in overrides. Keys are the
// lower-case contract names, e.g. "licensing_module".
func (a Addresses) WithOverrides(overrides map[string]string) (Addresses, error) {
	targets := map[string]*common.Address{
		"ip_asset_registry": &a.IPAssetRegistry,
		"licensing_module":  &a.LicensingModule,
		"pil_template":      &a.PILTemplate,
		"license_token":     &a.LicenseToken,
		"royalty_policy":    &a.RoyaltyPolicy,
		"currency_token":    &a.CurrencyToken,
	}

	for name, value := range overrides {
		target, ok := targets[name]
		if !ok {
			return Addresses{}, fmt.Errorf("%w: unknown contract %q", ErrInvalidAddress, name)
		}
		if !common.IsHexAddress(value) {
			return Addresses{}, fmt.Errorf("%w: %s=%q", ErrInvalidAddress, name, value)
		}
		*target = common.HexToAddress(value)
	}

	return a, nil
}

// PILTerms mirrors the license template's terms tuple.
type PILTerms struct {
	MintingFee         *big.Int
	CommercialRevShare *big.Int
	RoyaltyPolicy      common.Address
	CurrencyToken      common.Address
}
