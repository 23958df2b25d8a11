package core

import (
	"context"
	"errors"
	"fmt"
	"ipregistrar/internal/contracts"
	"ipregistrar/internal/ethereum"
	"ipregistrar/internal/repository"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

var (
	ErrPinningUnavailable  = errors.New("pinning service is not configured")
	ErrPostingUnavailable  = errors.New("social posting is not configured")
	ErrInvalidRequest      = errors.New("invalid request")
	ErrAssetNotFound       = errors.New("ip asset not found")
	ErrUnexpectedCallValue = errors.New("unexpected contract call result")
)

const approvalGasLimit uint64 = 100_000

// Registrar runs the IP licensing workflows for the configured account.
// Each workflow holds the registrar lock for its whole duration so that the
// transactions of different workflows never interleave.
type Registrar struct {
	logs      *zap.SugaredLogger
	tx        TxSubmitter
	registry  *contracts.Registry
	addresses contracts.Addresses
	repo      Repository
	fetcher   TransactionFetcher
	pinner    Pinner
	poster    Poster

	mu sync.Mutex
}

// NewRegistrar wires the workflows. fetcher, pinner and poster may be nil
// when the corresponding service is not configured.
func NewRegistrar(
	logger *zap.SugaredLogger,
	tx TxSubmitter,
	registry *contracts.Registry,
	addresses contracts.Addresses,
	repo Repository,
	fetcher TransactionFetcher,
	pinner Pinner,
	poster Poster,
) *Registrar {
	return &Registrar{
		logs:      logger,
		tx:        tx,
		registry:  registry,
		addresses: addresses,
		repo:      repo,
		fetcher:   fetcher,
		pinner:    pinner,
		poster:    poster,
	}
}

func (r *Registrar) Address() common.Address {
	return r.tx.Address()
}

// ApproveOperators grants each operator approval over all of the account's
// tokens on token. Operators that are already approved are skipped. With no
// operators given, the license template and the licensing module are used.
func (r *Registrar) ApproveOperators(ctx context.Context, token common.Address, operators ...common.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(operators) == 0 {
		operators = []common.Address{r.addresses.PILTemplate, r.addresses.LicensingModule}
	}

	for _, operator := range operators {
		approved, err := r.tx.IsApproved(ctx, ethereum.Approval{Token: token, Operator: operator})
		if err != nil {
			return fmt.Errorf("check approval of %s: %w", operator.Hex(), err)
		}
		if approved {
			r.logs.Infow("approval already granted, skipping", "token", token.Hex(), "operator", operator.Hex())
			continue
		}

		data, err := r.registry.Pack(contracts.RoleERC721, "setApprovalForAll", operator, true)
		if err != nil {
			return err
		}

		_, err = r.submit(ctx, ethereum.Operation{
			Label:    "set_approval_for_all",
			To:       token,
			Data:     data,
			GasLimit: approvalGasLimit,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// Announce posts text to the social account.
func (r *Registrar) Announce(ctx context.Context, text string) (string, error) {
	if r.poster == nil {
		return "", ErrPostingUnavailable
	}

	postID, err := r.poster.PostTweet(ctx, text)
	if err != nil {
		return "", fmt.Errorf("post announcement: %w", err)
	}
	return postID, nil
}

// submit runs op through the pipeline and records the receipt, including
// the receipt of a reverted transaction.
func (r *Registrar) submit(ctx context.Context, op ethereum.Operation) (*types.Receipt, error) {
	receipt, err := r.tx.SubmitAndConfirm(ctx, op)
	if receipt != nil {
		r.record(ctx, op, receipt)
	}
	if err != nil {
		return receipt, fmt.Errorf("%s: %w", op.Label, err)
	}
	return receipt, nil
}

func (r *Registrar) record(ctx context.Context, op ethereum.Operation, receipt *types.Receipt) {
	to := op.To.Hex()
	transaction := repository.Transaction{
		TransactionHash:   receipt.TxHash.Hex(),
		Label:             op.Label,
		TransactionStatus: receipt.Status,
		BlockHash:         receipt.BlockHash.Hex(),
		GasUsed:           receipt.GasUsed,
		From:              r.tx.Address().Hex(),
		To:                &to,
		LogsCount:         len(receipt.Logs),
	}
	if receipt.BlockNumber != nil {
		transaction.BlockNumber = receipt.BlockNumber.Uint64()
	}

	// The transaction is final on chain; a ledger failure must not fail the workflow.
	if err := r.repo.SaveTransactions(ctx, []repository.Transaction{transaction}); err != nil {
		r.logs.Errorw("failed to record transaction", "tx_hash", transaction.TransactionHash, "error", err)
	}
}

func (r *Registrar) saveAsset(ctx context.Context, asset repository.IPAsset) {
	if err := r.repo.SaveAsset(ctx, asset); err != nil {
		r.logs.Errorw("failed to save asset", "ip_id", asset.IPID, "error", err)
	}
}

func (r *Registrar) eventID(role contracts.Role, event string) (common.Hash, error) {
	id, err := r.registry.EventID(role, event)
	if err != nil {
		return common.Hash{}, fmt.Errorf("event %s: %w", event, err)
	}
	return id, nil
}

func joinIDs(ids []*big.Int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ",")
}

func toAssetRecord(asset repository.IPAsset) AssetRecord {
	var tokenIDs []string
	if asset.LicenseTokenIDs != "" {
		tokenIDs = strings.Split(asset.LicenseTokenIDs, ",")
	}

	return AssetRecord{
		IPID:            asset.IPID,
		ChainID:         asset.ChainID,
		TokenContract:   asset.TokenContract,
		TokenID:         asset.TokenID,
		MetadataURI:     asset.MetadataURI,
		NFTMetadataURI:  asset.NFTMetadataURI,
		ParentIPID:      asset.ParentIPID,
		LicenseTermsID:  asset.LicenseTermsID,
		LicenseTokenIDs: tokenIDs,
		RegistrationTx:  asset.RegistrationTx,
		AnnouncementID:  asset.AnnouncementID,
	}
}
