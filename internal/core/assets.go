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
	"github.com/ethereum/go-ethereum/core/types"
)

// MintNFT mints a token with tokenURI on nftContract and returns its id.
// The token goes to the registrar account when to is zero.
func (r *Registrar) MintNFT(ctx context.Context, nftContract, to common.Address, tokenURI string) (*big.Int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.mintNFT(ctx, nftContract, to, tokenURI)
}

func (r *Registrar) mintNFT(ctx context.Context, nftContract, to common.Address, tokenURI string) (*big.Int, error) {
	if to == (common.Address{}) {
		to = r.tx.Address()
	}

	data, err := r.registry.Pack(contracts.RoleERC721, "mint", to, tokenURI)
	if err != nil {
		return nil, err
	}

	receipt, err := r.submit(ctx, ethereum.Operation{
		Label: "mint_nft",
		To:    nftContract,
		Data:  data,
	})
	if err != nil {
		return nil, err
	}

	transferID, err := r.eventID(contracts.RoleERC721, "Transfer")
	if err != nil {
		return nil, err
	}

	tokenID, err := ethereum.TopicUint(receipt, nftContract, transferID, 3)
	if err != nil {
		return nil, fmt.Errorf("minted token id: %w", err)
	}

	r.logs.Infow("nft minted",
		"nft_contract", nftContract.Hex(),
		"token_id", tokenID.String(),
		"tx_hash", receipt.TxHash.Hex())
	return tokenID, nil
}

// RegisterIP registers an NFT as an IP asset and stores it in the ledger.
func (r *Registrar) RegisterIP(ctx context.Context, req RegisterIPRequest) (AssetRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	asset, err := r.registerIP(ctx, req)
	if err != nil {
		return AssetRecord{}, err
	}
	return toAssetRecord(asset), nil
}

func (r *Registrar) registerIP(ctx context.Context, req RegisterIPRequest) (repository.IPAsset, error) {
	if req.TokenID == nil || req.TokenContract == (common.Address{}) {
		return repository.IPAsset{}, fmt.Errorf("%w: token contract and token id are required", ErrInvalidRequest)
	}

	chainID := req.ChainID
	if chainID == nil {
		chainID = r.tx.ChainID()
	}

	var metadataURI string
	if req.Metadata != nil {
		if r.pinner == nil {
			return repository.IPAsset{}, ErrPinningUnavailable
		}

		name := req.MetadataName
		if name == "" {
			name = fmt.Sprintf("ip_metadata_%s_%s", req.TokenContract.Hex(), req.TokenID.String())
		}
		cid, err := r.pinner.PinJSON(ctx, name, req.Metadata)
		if err != nil {
			return repository.IPAsset{}, fmt.Errorf("pin ip metadata: %w", err)
		}
		metadataURI = r.pinner.URI(cid)
	}

	data, err := r.registry.Pack(contracts.RoleIPAssetRegistry, "register", chainID, req.TokenContract, req.TokenID)
	if err != nil {
		return repository.IPAsset{}, err
	}

	receipt, err := r.submit(ctx, ethereum.Operation{
		Label: "register_ip",
		To:    r.addresses.IPAssetRegistry,
		Data:  data,
	})
	if err != nil {
		return repository.IPAsset{}, err
	}

	ipID, err := r.registeredIPID(ctx, receipt, chainID, req.TokenContract, req.TokenID)
	if err != nil {
		return repository.IPAsset{}, err
	}

	asset := repository.IPAsset{
		IPID:           ipID.Hex(),
		ChainID:        chainID.String(),
		TokenContract:  req.TokenContract.Hex(),
		TokenID:        req.TokenID.String(),
		MetadataURI:    metadataURI,
		RegistrationTx: receipt.TxHash.Hex(),
	}
	r.saveAsset(ctx, asset)

	r.logs.Infow("ip asset registered",
		"ip_id", asset.IPID,
		"token_contract", asset.TokenContract,
		"token_id", asset.TokenID,
		"tx_hash", asset.RegistrationTx)
	return asset, nil
}

// registeredIPID reads the ip id from the registration event, or from the
// registry's deterministic ipId view when the event is absent.
func (r *Registrar) registeredIPID(
	ctx context.Context,
	receipt *types.Receipt,
	chainID *big.Int,
	tokenContract common.Address,
	tokenID *big.Int,
) (common.Address, error) {
	registeredID, err := r.eventID(contracts.RoleIPAssetRegistry, "IPRegistered")
	if err != nil {
		return common.Address{}, err
	}

	ipID, err := ethereum.TopicAddress(receipt, r.addresses.IPAssetRegistry, registeredID, 1)
	if err == nil {
		return ipID, nil
	}
	if !errors.Is(err, ethereum.ErrLogNotFound) {
		return common.Address{}, err
	}

	r.logs.Infow("registration event not found, reading ip id from registry", "tx_hash", receipt.TxHash.Hex())

	data, err := r.registry.Pack(contracts.RoleIPAssetRegistry, "ipId", chainID, tokenContract, tokenID)
	if err != nil {
		return common.Address{}, err
	}
	out, err := r.tx.Call(ctx, r.addresses.IPAssetRegistry, data)
	if err != nil {
		return common.Address{}, fmt.Errorf("read ip id: %w", err)
	}
	values, err := r.registry.Unpack(contracts.RoleIPAssetRegistry, "ipId", out)
	if err != nil {
		return common.Address{}, err
	}

	ipID, ok := values[0].(common.Address)
	if !ok || ipID == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w: ip id %v", ErrUnexpectedCallValue, values[0])
	}
	return ipID, nil
}
