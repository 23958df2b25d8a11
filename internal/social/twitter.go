package social

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/michimani/gotwi"
	"github.com/michimani/gotwi/tweet/managetweet"
	"github.com/michimani/gotwi/tweet/managetweet/types"
	"go.uber.org/zap"
)

var (
	ErrPostFailed   = errors.New("posting failed")
	ErrMissingToken = errors.New("bearer token is required")
	ErrEmptyPost    = errors.New("post text is empty")
)

const maxPostLength = 280

type Config struct {
	// BearerToken is an OAuth 2.0 user context access token with tweet.write scope.
	BearerToken string
	// APIURL replaces the scheme and host of every X API request when set.
	APIURL     string
	HTTPClient *http.Client
}

// TwitterClient posts text updates through the X API v2.
type TwitterClient struct {
	logs   *zap.SugaredLogger
	client *gotwi.Client
}

func NewTwitterClient(logger *zap.SugaredLogger, config Config) (*TwitterClient, error) {
	token := strings.TrimSpace(config.BearerToken)
	if token == "" {
		return nil, ErrMissingToken
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	if apiURL := strings.TrimRight(strings.TrimSpace(config.APIURL), "/"); apiURL != "" {
		base, err := url.Parse(apiURL)
		if err != nil || base.Scheme == "" || base.Host == "" {
			return nil, fmt.Errorf("invalid api url %q", config.APIURL)
		}
		next := httpClient.Transport
		if next == nil {
			next = http.DefaultTransport
		}
		rerouted := *httpClient
		rerouted.Transport = &baseURLTransport{base: base, next: next}
		httpClient = &rerouted
	}

	client, err := gotwi.NewClientWithAccessToken(&gotwi.NewClientWithAccessTokenInput{
		HTTPClient:  httpClient,
		AccessToken: token,
	})
	if err != nil {
		return nil, fmt.Errorf("create x api client: %w", err)
	}

	return &TwitterClient{
		logs:   logger,
		client: client,
	}, nil
}

// PostTweet publishes text and returns the id of the created post. Text
// longer than a post allows is truncated.
func (c *TwitterClient) PostTweet(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyPost
	}
	if runes := []rune(text); len(runes) > maxPostLength {
		text = string(runes[:maxPostLength])
	}

	res, err := managetweet.Create(ctx, c.client, &types.CreateInput{
		Text: gotwi.String(text),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPostFailed, err)
	}

	postID := gotwi.StringValue(res.Data.ID)
	if postID == "" {
		return "", fmt.Errorf("%w: response has no post id", ErrPostFailed)
	}

	c.logs.Infow("post published", "post_id", postID)
	return postID, nil
}

// baseURLTransport sends every request to base, keeping the request path.
type baseURLTransport struct {
	base *url.URL
	next http.RoundTripper
}

func (t *baseURLTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.URL.Scheme = t.base.Scheme
	out.URL.Host = t.base.Host
	out.URL.Path = strings.TrimRight(t.base.Path, "/") + req.URL.Path
	out.Host = t.base.Host
	return t.next.RoundTrip(out)
}
