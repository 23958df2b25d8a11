package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"ipregistrar/internal/core"
	"ipregistrar/internal/ethereum"
	"ipregistrar/internal/http/handler/middleware"
	"ipregistrar/internal/http/payload"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

var (
	Authenticate     = "POST /registrar/authenticate"
	GetTransactions  = "GET /registrar/transactions"
	GetAssets        = "GET /registrar/assets"
	GetAsset         = "GET /registrar/assets/{ipId}"
	CreateDerivative = "POST /registrar/derivatives"
)

// derivativeTimeout bounds a derivative workflow once it has been accepted.
// The workflow does not follow the request context: its transactions must be
// confirmed and recorded even when the client goes away.
const derivativeTimeout = 15 * time.Minute

type RegistrarHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	auth             Authenticator
	registrar        RegistrarService
}

func NewRegistrarHandler(
	logger *zap.SugaredLogger,
	requestValidator RequestValidator,
	auth Authenticator,
	registrar RegistrarService,
) *RegistrarHandler {
	return &RegistrarHandler{
		logs:             logger,
		requestValidator: requestValidator,
		auth:             auth,
		registrar:        registrar,
	}
}

func (h *RegistrarHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var payload payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.auth.Authenticate(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *RegistrarHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   fmt.Errorf("parse query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse query parameters", "error", err, "handler", GetTransactions, "request_id", requestId)
		return
	}

	txRequest := payload.TransactionsRequest{
		Transactions: values["hash"],
	}
	if err := txRequest.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate request: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request",
			"error", err,
			"handler", GetTransactions,
			"request_id", requestId)
		return
	}

	h.logs.Infow("transactions request received",
		"transactions", txRequest.Transactions,
		"handler", GetTransactions,
		"request_id", requestId)

	transactions, err := h.registrar.Transactions(r.Context(), txRequest.Transactions)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   fmt.Errorf("get transactions: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get transactions",
			"error", err,
			"handler", GetTransactions,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.TransactionRecord{
		"transactions": transactions,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *RegistrarHandler) HandleGetAssets(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	assets, err := h.registrar.Assets(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("get assets: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get assets",
			"error", err,
			"handler", GetAssets,
			"request_id", requestId)
		return
	}

	h.logs.Infow("assets retrieved from DB",
		"count", len(assets),
		"handler", GetAssets,
		"request_id", requestId)

	resp := map[string][]core.AssetRecord{
		"assets": assets,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *RegistrarHandler) HandleGetAsset(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	ipID := r.PathValue("ipId")
	if ipID == "" {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "ip id parameter is required",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("missing ipId parameter",
			"handler", GetAsset,
			"request_id", requestId)
		return
	}

	asset, err := h.registrar.Asset(r.Context(), ipID)
	if err != nil {
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrAssetNotFound) {
			httpCode = http.StatusNotFound
		}
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("get asset: %w", err).Error(),
		}, httpCode,
			requestId)
		h.logs.Errorw("failed to get asset",
			"error", err,
			"ip_id", ipID,
			"handler", GetAsset,
			"request_id", requestId)
		return
	}

	h.respond(w, asset, http.StatusOK, requestId)
}

func (h *RegistrarHandler) HandleCreateDerivative(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	subject, _ := r.Context().Value(middleware.SubjectKey).(string)

	var payload payload.DerivativeRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.respond(w, Response{
			Message: "Could not create derivative",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateDerivative,
			"request_id", requestId)
		return
	}

	h.logs.Infow("derivative request received",
		"parent_ip_id", payload.ParentIPID,
		"name", payload.Name,
		"user_id", subject,
		"handler", CreateDerivative,
		"request_id", requestId)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), derivativeTimeout)
	defer cancel()

	asset, err := h.registrar.CreateDerivative(ctx, payload.ToCoreRequest())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not create derivative",
			Error:   err.Error(),
		}, derivativeErrorCode(err),
			requestId)
		h.logs.Errorw("failed to create derivative",
			"error", err,
			"handler", CreateDerivative,
			"request_id", requestId)
		return
	}

	h.respond(w, asset, http.StatusCreated, requestId)
}

func derivativeErrorCode(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrPinningUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ethereum.ErrTransactionReverted):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ethereum.ErrConfirmationTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, ethereum.ErrRPC):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (h *RegistrarHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
