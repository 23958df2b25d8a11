package ipfs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrPinningFailed = errors.New("pinning request failed")
	ErrMissingJWT    = errors.New("pinata jwt is required")
)

const (
	pinJSONPath = "/pinning/pinJSONToIPFS"
	pinFilePath = "/pinning/pinFileToIPFS"
)

type Config struct {
	JWT        string
	APIURL     string
	GatewayURL string
	HTTPClient *http.Client
}

// PinataClient pins JSON documents and files through the Pinata REST API.
type PinataClient struct {
	logs       *zap.SugaredLogger
	jwt        string
	apiURL     string
	gatewayURL string
	httpClient *http.Client
}

func NewPinataClient(logger *zap.SugaredLogger, config Config) (*PinataClient, error) {
	jwt := strings.TrimSpace(config.JWT)
	if jwt == "" {
		return nil, ErrMissingJWT
	}

	apiURL := strings.TrimRight(strings.TrimSpace(config.APIURL), "/")
	if apiURL == "" {
		apiURL = "https://api.pinata.cloud"
	}

	gatewayURL := strings.TrimRight(strings.TrimSpace(config.GatewayURL), "/")
	if gatewayURL == "" {
		gatewayURL = "https://gateway.pinata.cloud/ipfs"
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}

	return &PinataClient{
		logs:       logger,
		jwt:        jwt,
		apiURL:     apiURL,
		gatewayURL: gatewayURL,
		httpClient: httpClient,
	}, nil
}

type pinMetadata struct {
	Name string `json:"name"`
}

type pinJSONRequest struct {
	PinataContent  any         `json:"pinataContent"`
	PinataMetadata pinMetadata `json:"pinataMetadata"`
}

type pinResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

// PinJSON pins content as a JSON document named name and returns its CID.
func (c *PinataClient) PinJSON(ctx context.Context, name string, content any) (string, error) {
	payload, err := json.Marshal(pinJSONRequest{
		PinataContent:  content,
		PinataMetadata: pinMetadata{Name: name},
	})
	if err != nil {
		return "", fmt.Errorf("marshal pin request: %w", err)
	}

	cid, err := c.pin(ctx, pinJSONPath, "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}

	c.logs.Infow("json pinned", "name", name, "cid", cid)
	return cid, nil
}

// PinFile uploads the contents of r as a file named name and returns its CID.
func (c *PinataClient) PinFile(ctx context.Context, name string, r io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("copy file content: %w", err)
	}

	metadata, err := json.Marshal(pinMetadata{Name: name})
	if err != nil {
		return "", fmt.Errorf("marshal pin metadata: %w", err)
	}
	if err := writer.WriteField("pinataMetadata", string(metadata)); err != nil {
		return "", fmt.Errorf("write metadata field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	cid, err := c.pin(ctx, pinFilePath, writer.FormDataContentType(), &body)
	if err != nil {
		return "", err
	}

	c.logs.Infow("file pinned", "name", name, "cid", cid)
	return cid, nil
}

// URI is the protocol-level reference stored on chain.
func (c *PinataClient) URI(cid string) string {
	return "ipfs://" + cid
}

// GatewayURL is an HTTP address that serves the pinned content.
func (c *PinataClient) GatewayURL(cid string) string {
	return c.gatewayURL + "/" + cid
}

func (c *PinataClient) pin(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+path, body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.jwt)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPinningFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: status %d: %s", ErrPinningFailed, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var result pinResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", ErrPinningFailed, err)
	}
	if result.IpfsHash == "" {
		return "", fmt.Errorf("%w: response has no IpfsHash", ErrPinningFailed)
	}

	return result.IpfsHash, nil
}
