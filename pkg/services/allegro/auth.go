// Package allegro talks to the Allegro marketplace API: device-flow
// authorization, token persistence and refresh, and paginated retrieval of
// order events. It is the only network-facing collaborator of the report
// pipeline and runs strictly before the analytics pass.
package allegro

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const DefaultAuthURL = "https://allegro.pl"

type AuthConfig struct {
	ClientID     string
	ClientSecret string
	// AuthURL overrides the authorization host; tests point it at httptest.
	AuthURL string
	// TokenFile is where the token set is persisted between runs.
	TokenFile string
}

// TokenSet is the persisted OAuth token state. ExpiresAt is computed at
// save time from expires_in.
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
}

type DeviceCode struct {
	DeviceCode              string `json:"device_code"`
	UserCode                string `json:"user_code"`
	VerificationURI         string `json:"verification_uri"`
	VerificationURIComplete string `json:"verification_uri_complete"`
	Interval                int    `json:"interval"`
}

// Authenticator drives the OAuth2 device flow and keeps the token file
// fresh.
type Authenticator struct {
	cfg    AuthConfig
	client *http.Client
	now    func() time.Time
}

func NewAuthenticator(cfg AuthConfig) *Authenticator {
	if cfg.AuthURL == "" {
		cfg.AuthURL = DefaultAuthURL
	}
	return &Authenticator{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
		now:    time.Now,
	}
}

func (a *Authenticator) postForm(ctx context.Context, path string, form url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.AuthURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(a.cfg.ClientID, a.cfg.ClientSecret)
	return a.client.Do(req)
}

// RequestDeviceCode starts the device flow. The caller shows the returned
// verification URI and user code, then polls with PollToken.
func (a *Authenticator) RequestDeviceCode(ctx context.Context) (*DeviceCode, error) {
	form := url.Values{"client_id": {a.cfg.ClientID}}
	resp, err := a.postForm(ctx, "/auth/oauth/device", form)
	if err != nil {
		return nil, fmt.Errorf("request device code: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("device code request failed with status %d", resp.StatusCode)
	}

	var code DeviceCode
	if err := json.NewDecoder(resp.Body).Decode(&code); err != nil {
		return nil, fmt.Errorf("decode device code response: %w", err)
	}
	return &code, nil
}

type tokenError struct {
	Error string `json:"error"`
}

// PollToken polls the token endpoint until the user approves the device,
// backing off on slow_down responses. It saves the token set on success.
func (a *Authenticator) PollToken(ctx context.Context, code *DeviceCode) (*TokenSet, error) {
	logger := zerolog.Ctx(ctx)
	form := url.Values{
		"grant_type":  {"urn:ietf:params:oauth:grant-type:device_code"},
		"device_code": {code.DeviceCode},
	}

	interval := time.Duration(code.Interval) * time.Second
	if interval <= 0 {
		interval = 5 * time.Second
	}

	for {
		resp, err := a.postForm(ctx, "/auth/oauth/token", form)
		if err != nil {
			return nil, fmt.Errorf("poll token: %w", err)
		}

		switch resp.StatusCode {
		case http.StatusOK:
			var tokens TokenSet
			err := json.NewDecoder(resp.Body).Decode(&tokens)
			resp.Body.Close()
			if err != nil {
				return nil, fmt.Errorf("decode token response: %w", err)
			}
			if err := a.SaveTokens(&tokens); err != nil {
				return nil, err
			}
			return &tokens, nil
		case http.StatusBadRequest:
			var terr tokenError
			err := json.NewDecoder(resp.Body).Decode(&terr)
			resp.Body.Close()
			if err != nil {
				return nil, fmt.Errorf("decode token error response: %w", err)
			}
			switch terr.Error {
			case "authorization_pending":
			case "slow_down":
				interval += 5 * time.Second
			default:
				return nil, fmt.Errorf("authorization failed: %s", terr.Error)
			}
		default:
			status := resp.StatusCode
			resp.Body.Close()
			return nil, fmt.Errorf("token endpoint returned status %d", status)
		}

		logger.Debug().Dur("interval", interval).Msg("waiting for user authorization")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}
}

// Refresh exchanges the refresh token for a new token set and persists it.
func (a *Authenticator) Refresh(ctx context.Context, refreshToken string) (*TokenSet, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	}
	resp, err := a.postForm(ctx, "/auth/oauth/token", form)
	if err != nil {
		return nil, fmt.Errorf("refresh token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token refresh failed with status %d", resp.StatusCode)
	}

	var tokens TokenSet
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return nil, fmt.Errorf("decode refreshed tokens: %w", err)
	}
	if err := a.SaveTokens(&tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

func (a *Authenticator) SaveTokens(tokens *TokenSet) error {
	if tokens.ExpiresIn == 0 {
		tokens.ExpiresIn = 43200
	}
	tokens.ExpiresAt = a.now().Unix() + tokens.ExpiresIn

	data, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tokens: %w", err)
	}
	if err := os.WriteFile(a.cfg.TokenFile, data, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

func (a *Authenticator) LoadTokens() (*TokenSet, error) {
	data, err := os.ReadFile(a.cfg.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("read token file: %w", err)
	}
	var tokens TokenSet
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, fmt.Errorf("parse token file %s: %w", a.cfg.TokenFile, err)
	}
	return &tokens, nil
}

// ValidAccessToken returns a usable access token, refreshing the persisted
// set first when it has expired.
func (a *Authenticator) ValidAccessToken(ctx context.Context) (string, error) {
	tokens, err := a.LoadTokens()
	if err != nil {
		return "", err
	}

	if tokens.ExpiresAt == 0 || a.now().Unix() >= tokens.ExpiresAt {
		zerolog.Ctx(ctx).Info().Msg("access token expired, refreshing")
		tokens, err = a.Refresh(ctx, tokens.RefreshToken)
		if err != nil {
			return "", err
		}
	}

	return tokens.AccessToken, nil
}
