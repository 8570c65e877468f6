package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"

	"github.com/codewithharshjha/micro-services/internal/auth"
	"github.com/codewithharshjha/micro-services/internal/logger"
)

const (
	providerName = "github"
	apiBaseURL   = "https://api.github.com"
)

// Provider authenticates against GitHub. GitHub issues no id_token, so
// the profile comes from the REST API after the code exchange. The
// returned profile may lack an email: GitHub users can keep their
// address private, and synthesis from the login name happens in the
// auth service, not here.
type Provider struct {
	oauthConfig *oauth2.Config
	apiBase     string
}

func New(
	clientID string,
	clientSecret string,
	redirectURL string,
) (*Provider, error) {

	if clientID == "" || clientSecret == "" || redirectURL == "" {
		return nil, errors.New("github oauth config missing required fields")
	}

	oauthCfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     githuboauth.Endpoint,
		Scopes: []string{
			"read:user",
			"user:email",
		},
	}

	return &Provider{
		oauthConfig: oauthCfg,
		apiBase:     apiBaseURL,
	}, nil
}

func (p *Provider) Name() string {
	return providerName
}

// AuthCodeURL builds the consent URL with PKCE parameters.
func (p *Provider) AuthCodeURL(state string, codeChallenge string) string {
	return p.oauthConfig.AuthCodeURL(
		state,
		oauth2.SetAuthURLParam("code_challenge", codeChallenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)
}

func (p *Provider) Exchange(
	ctx context.Context,
	code string,
	codeVerifier string,
) (*auth.Profile, error) {

	token, err := p.oauthConfig.Exchange(
		ctx,
		code,
		oauth2.SetAuthURLParam("code_verifier", codeVerifier),
	)
	if err != nil {
		return nil, fmt.Errorf("github token exchange failed: %w", err)
	}

	client := p.oauthConfig.Client(ctx, token)

	var u struct {
		ID    int64  `json:"id"`
		Login string `json:"login"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := p.getJSON(ctx, client, "/user", &u); err != nil {
		return nil, fmt.Errorf("github user fetch failed: %w", err)
	}
	if u.ID == 0 || u.Login == "" {
		return nil, errors.New("github user response missing required fields")
	}

	email := u.Email
	verified := false
	if email == "" {
		email, verified = p.primaryEmail(ctx, client)
	}

	logger.Info("github profile fetched", map[string]any{
		"login":         u.Login,
		"email_present": email != "",
	})

	return &auth.Profile{
		Provider:       providerName,
		ProviderUserID: strconv.FormatInt(u.ID, 10),
		Email:          email,
		EmailVerified:  verified,
		DisplayName:    u.Name,
		Username:       u.Login,
	}, nil
}

// primaryEmail asks the emails endpoint for the primary verified
// address. Best effort: a user without one still authenticates and
// gets a synthesized address downstream.
func (p *Provider) primaryEmail(ctx context.Context, client *http.Client) (string, bool) {
	var emails []struct {
		Email    string `json:"email"`
		Primary  bool   `json:"primary"`
		Verified bool   `json:"verified"`
	}
	if err := p.getJSON(ctx, client, "/user/emails", &emails); err != nil {
		logger.Warn("github email fetch failed", map[string]any{
			"error": err.Error(),
		})
		return "", false
	}

	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, true
		}
	}
	for _, e := range emails {
		if e.Verified {
			return e.Email, true
		}
	}
	return "", false
}

func (p *Provider) getJSON(ctx context.Context, client *http.Client, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.apiBase+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
