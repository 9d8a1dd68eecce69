package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const requestTimeout = 10 * time.Second

// GoTrueProvider talks to a Supabase-style auth API: password grant for
// sign-in, a signup endpoint, and bearer-token logout. Access tokens are
// HS256 JWTs signed with the project secret, so session verification
// happens locally without a network call.
type GoTrueProvider struct {
	baseURL  string
	anonKey  string
	verifier *TokenVerifier
	client   *http.Client
}

// GoTrueConfig holds the provider connection settings.
type GoTrueConfig struct {
	BaseURL   string
	AnonKey   string
	JWTSecret string
}

// NewGoTrueProvider creates a provider for the given project.
func NewGoTrueProvider(cfg GoTrueConfig) *GoTrueProvider {
	return &GoTrueProvider{
		baseURL:  cfg.BaseURL,
		anonKey:  cfg.AnonKey,
		verifier: NewTokenVerifier(cfg.JWTSecret),
		client:   &http.Client{Timeout: requestTimeout},
	}
}

type credentialsBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		UserMetadata struct {
			Name string `json:"name"`
		} `json:"user_metadata"`
	} `json:"user"`
}

type errorResponse struct {
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

// message returns the most specific upstream error text available.
func (e errorResponse) message() string {
	for _, m := range []string{e.ErrorDescription, e.Msg, e.Message} {
		if m != "" {
			return m
		}
	}
	return "authentication failed"
}

// SignIn implements Provider.
func (p *GoTrueProvider) SignIn(ctx context.Context, email, password string) (Session, error) {
	return p.sessionRequest(ctx, "/auth/v1/token?grant_type=password", email, password)
}

// SignUp implements Provider.
func (p *GoTrueProvider) SignUp(ctx context.Context, email, password string) (Session, error) {
	return p.sessionRequest(ctx, "/auth/v1/signup", email, password)
}

func (p *GoTrueProvider) sessionRequest(ctx context.Context, path, email, password string) (Session, error) {
	body, err := json.Marshal(credentialsBody{Email: email, Password: password})
	if err != nil {
		return Session{}, fmt.Errorf("marshal credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return Session{}, fmt.Errorf("build auth request: %w", err)
	}
	p.setHeaders(req, "")

	resp, err := p.client.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Session{}, fmt.Errorf("read auth response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		// A non-JSON error body still yields the generic message.
		_ = json.Unmarshal(raw, &errResp)
		return Session{}, fmt.Errorf("%s", errResp.message())
	}

	var sess sessionResponse
	if err := json.Unmarshal(raw, &sess); err != nil {
		return Session{}, fmt.Errorf("decode auth response: %w", err)
	}

	name := sess.User.UserMetadata.Name
	if name == "" {
		name = "User"
	}

	return Session{
		AccessToken: sess.AccessToken,
		User: User{
			ID:    sess.User.ID,
			Email: sess.User.Email,
			Name:  name,
		},
	}, nil
}

// SignOut implements Provider.
func (p *GoTrueProvider) SignOut(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/auth/v1/logout", http.NoBody)
	if err != nil {
		return fmt.Errorf("build logout request: %w", err)
	}
	p.setHeaders(req, accessToken)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("logout returned status %d", resp.StatusCode)
	}
	return nil
}

// UserFromToken implements Provider by verifying the token signature and
// expiry locally.
func (p *GoTrueProvider) UserFromToken(_ context.Context, accessToken string) (User, error) {
	return p.verifier.Verify(accessToken)
}

func (p *GoTrueProvider) setHeaders(req *http.Request, bearer string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", p.anonKey)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
}
