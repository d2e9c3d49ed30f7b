package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/uniquetopup/ff_info_bot/logger"
	"github.com/uniquetopup/ff_info_bot/models"
)

var _ Client = (*DefaultClient)(nil)

const accountPath = "/main/games/freefire/account/api"

// DefaultClient is the Free Fire account API client.
type DefaultClient struct {
	baseURL   string
	userAgent string
	region    string
	userUID   string
	apiKey    string
	logger    logger.Logger
}

type Params struct {
	BaseURL   string
	UserAgent string
	Region    string
	UserUID   string
	APIKey    string
	Logger    logger.Logger
}

// New creates a new account API client.
func New(p Params) *DefaultClient {
	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}
	return &DefaultClient{
		baseURL:   p.BaseURL,
		userAgent: p.UserAgent,
		region:    p.Region,
		userUID:   p.UserUID,
		apiKey:    p.APIKey,
		logger:    log,
	}
}

// FetchProfile issues a single GET for the full account payload.
// No retries. Any failure mode collapses to ErrServiceUnavailable;
// a 2xx body that parses as JSON is returned as-is with no schema
// validation (extraction tolerates any shape).
func (c *DefaultClient) FetchProfile(ctx context.Context, httpClient *http.Client, uid string) (models.RawProfile, error) {
	query := models.ProfileQuery{
		UID:     uid,
		Region:  c.region,
		UserUID: c.userUID,
		APIKey:  c.apiKey,
	}

	endpoint, err := c.buildURL(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		c.logger.WarnW("profile fetch transport failure", "uid", uid, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WarnW("profile fetch bad status", "uid", uid, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()

	var raw models.RawProfile
	if err := dec.Decode(&raw); err != nil {
		c.logger.WarnW("profile fetch unparseable body", "uid", uid, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	return raw, nil
}

func (c *DefaultClient) buildURL(q models.ProfileQuery) (string, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	endpoint.Path = accountPath

	params := endpoint.Query()
	params.Set("sectionName", "AllData")
	params.Set("PlayerUid", q.UID)
	params.Set("region", q.Region)
	params.Set("useruid", q.UserUID)
	params.Set("api", q.APIKey)
	endpoint.RawQuery = params.Encode()

	return endpoint.String(), nil
}
