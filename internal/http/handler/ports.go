package handler

import (
	"context"
	"ipregistrar/internal/core"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name Authenticator . Authenticator
type Authenticator interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
}

//counterfeiter:generate -o fake -fake-name RegistrarService . RegistrarService
type RegistrarService interface {
	Transactions(ctx context.Context, transactionsHashes []string) ([]core.TransactionRecord, error)
	Assets(ctx context.Context) ([]core.AssetRecord, error)
	Asset(ctx context.Context, ipID string) (core.AssetRecord, error)
	CreateDerivative(ctx context.Context, req core.DerivativeRequest) (core.AssetRecord, error)
}
