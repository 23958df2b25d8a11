package core

import (
	"context"
	"io"
	"ipregistrar/internal/ethereum"
	"ipregistrar/internal/repository"
	tokenIssuer "ipregistrar/pkg/jwt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TxSubmitter . TxSubmitter
type TxSubmitter interface {
	SubmitAndConfirm(ctx context.Context, op ethereum.Operation) (*types.Receipt, error)
	Call(ctx context.Context, to common.Address, data []byte) ([]byte, error)
	IsApproved(ctx context.Context, approval ethereum.Approval) (bool, error)
	Address() common.Address
	ChainID() *big.Int
}

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUserFromDB(ctx context.Context, username string) (repository.User, error)
	GetTransactionsByHash(ctx context.Context, txHashes []string) ([]repository.Transaction, error)
	SaveTransactions(ctx context.Context, transactions []repository.Transaction) error
	SaveAsset(ctx context.Context, asset repository.IPAsset) error
	GetAsset(ctx context.Context, ipID string) (repository.IPAsset, error)
	GetAssets(ctx context.Context) ([]repository.IPAsset, error)
}

//counterfeiter:generate -o fake -fake-name TransactionFetcher . TransactionFetcher
type TransactionFetcher interface {
	FetchTransactions(ctx context.Context, hashes []string) ([]*ethereum.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name Pinner . Pinner
type Pinner interface {
	PinJSON(ctx context.Context, name string, content any) (string, error)
	PinFile(ctx context.Context, name string, r io.Reader) (string, error)
	URI(cid string) string
	GatewayURL(cid string) string
}

//counterfeiter:generate -o fake -fake-name Poster . Poster
type Poster interface {
	PostTweet(ctx context.Context, text string) (string, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
