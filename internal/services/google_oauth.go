package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heritageroots/heritage-backend/internal/config"
)

const (
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
)

// GoogleUserInfo is the subset of the OpenID userinfo payload we keep.
type GoogleUserInfo struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type GoogleOAuthClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewGoogleOAuthClient(cfg *config.Config) *GoogleOAuthClient {
	return &GoogleOAuthClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// AuthURL builds the consent-screen redirect for the login flow.
func (g *GoogleOAuthClient) AuthURL(state string) string {
	q := url.Values{}
	q.Set("client_id", g.cfg.GoogleClientID)
	q.Set("redirect_uri", g.cfg.GoogleRedirectURL)
	q.Set("response_type", "code")
	q.Set("scope", "openid email profile")
	q.Set("state", state)
	return googleAuthURL + "?" + q.Encode()
}

// Exchange trades an authorization code for the user's identity.
func (g *GoogleOAuthClient) Exchange(code string) (*GoogleUserInfo, error) {
	form := url.Values{}
	form.Set("code", code)
	form.Set("client_id", g.cfg.GoogleClientID)
	form.Set("client_secret", g.cfg.GoogleClientSecret)
	form.Set("redirect_uri", g.cfg.GoogleRedirectURL)
	form.Set("grant_type", "authorization_code")

	resp, err := g.httpClient.Post(googleTokenURL, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("token exchange request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token exchange failed with status %d", resp.StatusCode)
	}

	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return nil, fmt.Errorf("empty access token in exchange response")
	}

	return g.fetchUserInfo(tok.AccessToken)
}

func (g *GoogleOAuthClient) fetchUserInfo(accessToken string) (*GoogleUserInfo, error) {
	req, err := http.NewRequest(http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("userinfo request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo failed with status %d", resp.StatusCode)
	}

	var info GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("userinfo response missing email")
	}
	return &info, nil
}
