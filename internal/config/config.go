package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jellydator/validation"
)

var (
	ErrEnvVarNotFound = errors.New("environment variable not found")
	ErrInvalidValue   = errors.New("invalid environment value")
)

const (
	rpcURLEnvKey        = "STORY_RPC_URL"
	privateKeyEnvKey    = "STORY_WALLET_PRIVATE_KEY"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	feeModelEnvKey      = "FEE_MODEL"
	confirmTimeoutKey   = "CONFIRMATION_TIMEOUT"
	pollIntervalKey     = "RECEIPT_POLL_INTERVAL"
	retryAttemptsKey    = "RPC_RETRY_ATTEMPTS"
	retryDelayKey       = "RPC_RETRY_DELAY"
	pinataJWTEnvKey     = "PINATA_JWT"
	pinataAPIEnvKey     = "PINATA_API_URL"
	pinataGatewayEnvKey = "PINATA_GATEWAY_URL"
	twitterTokenEnvKey  = "TWITTER_BEARER_TOKEN"
	twitterAPIEnvKey    = "TWITTER_API_URL"
	apiPortEnvKey       = "API_PORT"
	jwtSecretEnvKey     = "JWT_SECRET"
	apiUserEnvKey       = "API_USERNAME"
	apiPassHashEnvKey   = "API_PASSWORD_HASH"
	logFileEnvKey       = "LOG_FILE"
	addressEnvSuffix    = "_ADDRESS"
)

const (
	FeeModelLegacy  = "legacy"
	FeeModelDynamic = "dynamic"
)

// addressEnvKeys are the contract address overrides read from the environment.
var addressEnvKeys = []string{
	"IP_ASSET_REGISTRY_ADDRESS",
	"LICENSING_MODULE_ADDRESS",
	"PIL_TEMPLATE_ADDRESS",
	"LICENSE_TOKEN_ADDRESS",
	"ROYALTY_POLICY_ADDRESS",
	"CURRENCY_TOKEN_ADDRESS",
}

var (
	privateKeyRegex = regexp.MustCompile(`^(0x)?[0-9a-fA-F]{64}$`)
	urlRegex        = regexp.MustCompile(`^(https?|wss?)://\S+$`)
)

type Chain struct {
	RPCURL              string
	PrivateKey          string
	FeeModel            string
	ConfirmationTimeout time.Duration
	PollInterval        time.Duration
	RetryAttempts       uint
	RetryDelay          time.Duration
	// Addresses maps a contract role (e.g. "licensing_module") to an address override.
	Addresses map[string]string
}

type Pinata struct {
	JWT        string
	APIURL     string
	GatewayURL string
}

type Social struct {
	BearerToken string
	APIURL      string
}

type API struct {
	Port         string
	JWTSecret    string
	Username     string
	PasswordHash string
}

type App struct {
	Chain           Chain
	DBConnectionURL string
	Pinata          Pinata
	Social          Social
	API             API
	LogFile         string
}

// NewApp reads the configuration from the environment. Only the chain and
// database settings are mandatory here; workflows that need the pinning
// service, the social API or the HTTP API check their own keys with the
// Require* methods before doing any network activity.
func NewApp() (App, error) {
	rpcURL, ok := os.LookupEnv(rpcURLEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", ErrEnvVarNotFound, rpcURLEnvKey)
	}

	privateKey, ok := os.LookupEnv(privateKeyEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", ErrEnvVarNotFound, privateKeyEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", ErrEnvVarNotFound, dbConnEnvKey)
	}

	confirmTimeout, err := lookupDuration(confirmTimeoutKey, 2*time.Minute)
	if err != nil {
		return App{}, err
	}

	pollInterval, err := lookupDuration(pollIntervalKey, 2*time.Second)
	if err != nil {
		return App{}, err
	}

	retryAttempts, err := lookupUint(retryAttemptsKey, 3)
	if err != nil {
		return App{}, err
	}

	retryDelay, err := lookupDuration(retryDelayKey, 500*time.Millisecond)
	if err != nil {
		return App{}, err
	}

	addresses := make(map[string]string)
	for _, key := range addressEnvKeys {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			role := strings.ToLower(strings.TrimSuffix(key, addressEnvSuffix))
			addresses[role] = value
		}
	}

	app := App{
		Chain: Chain{
			RPCURL:              rpcURL,
			PrivateKey:          privateKey,
			FeeModel:            lookupDefault(feeModelEnvKey, FeeModelDynamic),
			ConfirmationTimeout: confirmTimeout,
			PollInterval:        pollInterval,
			RetryAttempts:       retryAttempts,
			RetryDelay:          retryDelay,
			Addresses:           addresses,
		},
		DBConnectionURL: dbConn,
		Pinata: Pinata{
			JWT:        os.Getenv(pinataJWTEnvKey),
			APIURL:     lookupDefault(pinataAPIEnvKey, "https://api.pinata.cloud"),
			GatewayURL: lookupDefault(pinataGatewayEnvKey, "https://gateway.pinata.cloud/ipfs"),
		},
		Social: Social{
			BearerToken: os.Getenv(twitterTokenEnvKey),
			APIURL:      lookupDefault(twitterAPIEnvKey, "https://api.twitter.com"),
		},
		API: API{
			Port:         os.Getenv(apiPortEnvKey),
			JWTSecret:    os.Getenv(jwtSecretEnvKey),
			Username:     os.Getenv(apiUserEnvKey),
			PasswordHash: os.Getenv(apiPassHashEnvKey),
		},
		LogFile: os.Getenv(logFileEnvKey),
	}

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	return app, nil
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a.Chain,
		validation.Field(&a.Chain.RPCURL, validation.Required, validation.Match(urlRegex)),
		validation.Field(&a.Chain.PrivateKey, validation.Required, validation.Match(privateKeyRegex)),
		validation.Field(&a.Chain.FeeModel, validation.Required, validation.In(FeeModelLegacy, FeeModelDynamic)),
		validation.Field(&a.Chain.ConfirmationTimeout, validation.Required),
		validation.Field(&a.Chain.PollInterval, validation.Required),
		validation.Field(&a.Chain.RetryAttempts, validation.Required),
	)
}

// RequirePinning fails when the pinning service credentials are absent.
func (a App) RequirePinning() error {
	if a.Pinata.JWT == "" {
		return fmt.Errorf("%w: %s", ErrEnvVarNotFound, pinataJWTEnvKey)
	}
	return nil
}

// RequireSocial fails when the social posting credentials are absent.
func (a App) RequireSocial() error {
	if a.Social.BearerToken == "" {
		return fmt.Errorf("%w: %s", ErrEnvVarNotFound, twitterTokenEnvKey)
	}
	return nil
}

// RequireAPI fails when any of the HTTP API settings is absent.
func (a App) RequireAPI() error {
	required := []struct {
		key   string
		value string
	}{
		{apiPortEnvKey, a.API.Port},
		{jwtSecretEnvKey, a.API.JWTSecret},
		{apiUserEnvKey, a.API.Username},
		{apiPassHashEnvKey, a.API.PasswordHash},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s", ErrEnvVarNotFound, r.key)
		}
	}
	return nil
}

func lookupDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func lookupDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidValue, key, err)
	}
	return d, nil
}

func lookupUint(key string, fallback uint) (uint, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidValue, key, err)
	}
	return uint(n), nil
}
