package core

import (
	"context"
	"errors"
	"fmt"
	"ipregistrar/internal/contracts"
	"ipregistrar/internal/ethereum"
	"ipregistrar/internal/repository"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// commercialRevShare10 is 10% in the template's 1e6 fixed-point scale.
var commercialRevShare10 = big.NewInt(10_000_000)

// CommercialRemixTerms are zero-fee terms with a 10% commercial revenue
// share, paid through the deployment's royalty policy and currency.
func CommercialRemixTerms(addresses contracts.Addresses) contracts.PILTerms {
	return contracts.PILTerms{
		MintingFee:         big.NewInt(0),
		CommercialRevShare: new(big.Int).Set(commercialRevShare10),
		RoyaltyPolicy:      addresses.RoyaltyPolicy,
		CurrencyToken:      addresses.CurrencyToken,
	}
}

// RegisterLicenseTerms registers terms with the license template and returns
// their id. Terms that were registered before resolve to their existing id.
func (r *Registrar) RegisterLicenseTerms(ctx context.Context, terms contracts.PILTerms) (*big.Int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.registerLicenseTerms(ctx, terms)
}

func (r *Registrar) registerLicenseTerms(ctx context.Context, terms contracts.PILTerms) (*big.Int, error) {
	if terms.MintingFee == nil || terms.CommercialRevShare == nil {
		return nil, fmt.Errorf("%w: minting fee and revenue share are required", ErrInvalidRequest)
	}

	data, err := r.registry.Pack(contracts.RoleLicenseTemplate, "registerLicenseTerms", terms)
	if err != nil {
		return nil, err
	}

	receipt, err := r.submit(ctx, ethereum.Operation{
		Label: "register_license_terms",
		To:    r.addresses.PILTemplate,
		Data:  data,
	})
	if err != nil {
		return nil, err
	}

	registeredID, err := r.eventID(contracts.RoleLicenseTemplate, "LicenseTermsRegistered")
	if err != nil {
		return nil, err
	}

	termsID, err := ethereum.TopicUint(receipt, r.addresses.PILTemplate, registeredID, 1)
	if errors.Is(err, ethereum.ErrLogNotFound) {
		r.logs.Infow("terms already registered, looking up their id", "tx_hash", receipt.TxHash.Hex())
		termsID, err = r.licenseTermsID(ctx, terms)
	}
	if err != nil {
		return nil, fmt.Errorf("license terms id: %w", err)
	}

	r.logs.Infow("license terms registered", "license_terms_id", termsID.String(), "tx_hash", receipt.TxHash.Hex())
	return termsID, nil
}

func (r *Registrar) licenseTermsID(ctx context.Context, terms contracts.PILTerms) (*big.Int, error) {
	data, err := r.registry.Pack(contracts.RoleLicenseTemplate, "getLicenseTermsId", terms)
	if err != nil {
		return nil, err
	}

	out, err := r.tx.Call(ctx, r.addresses.PILTemplate, data)
	if err != nil {
		return nil, err
	}

	values, err := r.registry.Unpack(contracts.RoleLicenseTemplate, "getLicenseTermsId", out)
	if err != nil {
		return nil, err
	}

	id, ok := values[0].(*big.Int)
	if !ok || id.Sign() == 0 {
		return nil, fmt.Errorf("%w: license terms id %v", ErrUnexpectedCallValue, values[0])
	}
	return id, nil
}

// AttachLicenseTerms attaches termsID to ipID. The licensing module is
// approved on tokenContract first when needed.
func (r *Registrar) AttachLicenseTerms(ctx context.Context, ipID, tokenContract common.Address, termsID *big.Int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if termsID == nil {
		return fmt.Errorf("%w: license terms id is required", ErrInvalidRequest)
	}

	data, err := r.registry.Pack(contracts.RoleLicensingModule, "attachLicenseTerms", ipID, r.addresses.PILTemplate, termsID)
	if err != nil {
		return err
	}

	receipt, err := r.submit(ctx, ethereum.Operation{
		Label: "attach_license_terms",
		To:    r.addresses.LicensingModule,
		Data:  data,
		Approval: &ethereum.Approval{
			Token:    tokenContract,
			Operator: r.addresses.LicensingModule,
		},
	})
	if err != nil {
		return err
	}

	r.updateAsset(ctx, ipID, func(asset *repository.IPAsset) {
		asset.LicenseTermsID = termsID.String()
	})

	r.logs.Infow("license terms attached",
		"ip_id", ipID.Hex(),
		"license_terms_id", termsID.String(),
		"tx_hash", receipt.TxHash.Hex())
	return nil
}

// MintLicenseTokens mints license tokens of the licensor's terms and returns
// the token ids in the order they were minted.
func (r *Registrar) MintLicenseTokens(ctx context.Context, req MintLicenseRequest) ([]*big.Int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.mintLicenseTokens(ctx, req)
}

func (r *Registrar) mintLicenseTokens(ctx context.Context, req MintLicenseRequest) ([]*big.Int, error) {
	if req.LicenseTermsID == nil {
		return nil, fmt.Errorf("%w: license terms id is required", ErrInvalidRequest)
	}

	amount := req.Amount
	if amount == nil || amount.Sign() <= 0 {
		amount = big.NewInt(1)
	}
	receiver := req.Receiver
	if receiver == (common.Address{}) {
		receiver = r.tx.Address()
	}

	data, err := r.registry.Pack(contracts.RoleLicensingModule, "mintLicenseTokens",
		req.LicensorIPID,
		r.addresses.PILTemplate,
		req.LicenseTermsID,
		amount,
		receiver,
		"",
		orZero(req.MaxMintingFee),
		orZero(req.MaxRevenueShare),
	)
	if err != nil {
		return nil, err
	}

	receipt, err := r.submit(ctx, ethereum.Operation{
		Label: "mint_license_tokens",
		To:    r.addresses.LicensingModule,
		Data:  data,
	})
	if err != nil {
		return nil, err
	}

	transferID, err := r.eventID(contracts.RoleERC721, "Transfer")
	if err != nil {
		return nil, err
	}

	var tokenIDs []*big.Int
	for _, log := range ethereum.FindLogs(receipt, r.addresses.LicenseToken, transferID) {
		if len(log.Topics) < 4 {
			continue
		}
		tokenIDs = append(tokenIDs, new(big.Int).SetBytes(log.Topics[3].Bytes()))
	}
	if len(tokenIDs) == 0 {
		return nil, fmt.Errorf("license token ids: %w: no transfer from %s", ethereum.ErrLogNotFound, r.addresses.LicenseToken.Hex())
	}

	r.logs.Infow("license tokens minted",
		"licensor_ip_id", req.LicensorIPID.Hex(),
		"license_token_ids", joinIDs(tokenIDs),
		"tx_hash", receipt.TxHash.Hex())
	return tokenIDs, nil
}

// RegisterDerivative links childIPID to the parents of licenseTokenIDs by
// burning the license tokens.
func (r *Registrar) RegisterDerivative(ctx context.Context, childIPID, tokenContract common.Address, licenseTokenIDs []*big.Int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.registerDerivative(ctx, childIPID, tokenContract, licenseTokenIDs)
}

func (r *Registrar) registerDerivative(ctx context.Context, childIPID, tokenContract common.Address, licenseTokenIDs []*big.Int) error {
	if len(licenseTokenIDs) == 0 {
		return fmt.Errorf("%w: at least one license token id is required", ErrInvalidRequest)
	}

	data, err := r.registry.Pack(contracts.RoleLicensingModule, "registerDerivativeWithLicenseTokens",
		childIPID,
		licenseTokenIDs,
		"",
		big.NewInt(0),
	)
	if err != nil {
		return err
	}

	receipt, err := r.submit(ctx, ethereum.Operation{
		Label: "register_derivative",
		To:    r.addresses.LicensingModule,
		Data:  data,
		Approval: &ethereum.Approval{
			Token:    tokenContract,
			Operator: r.addresses.LicensingModule,
		},
	})
	if err != nil {
		return err
	}

	r.updateAsset(ctx, childIPID, func(asset *repository.IPAsset) {
		asset.LicenseTokenIDs = joinIDs(licenseTokenIDs)
	})

	r.logs.Infow("derivative registered",
		"child_ip_id", childIPID.Hex(),
		"license_token_ids", joinIDs(licenseTokenIDs),
		"tx_hash", receipt.TxHash.Hex())
	return nil
}

// updateAsset applies update to the ledger copy of ipID, if the registrar
// registered it.
func (r *Registrar) updateAsset(ctx context.Context, ipID common.Address, update func(*repository.IPAsset)) {
	asset, err := r.repo.GetAsset(ctx, ipID.Hex())
	if err != nil {
		if !errors.Is(err, repository.ErrAssetNotFound) {
			r.logs.Errorw("failed to load asset", "ip_id", ipID.Hex(), "error", err)
		}
		return
	}

	update(&asset)
	r.saveAsset(ctx, asset)
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return big.NewInt(0)
	}
	return v
}
