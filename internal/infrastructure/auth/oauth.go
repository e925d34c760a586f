package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"

	domainerrors "github.com/rafabene/threaddate-backend/internal/domain/errors"
	"github.com/rafabene/threaddate-backend/internal/domain/ports"
	"github.com/rafabene/threaddate-backend/internal/infrastructure/config"
)

const (
	ProviderGitHub = "github"
	ProviderGoogle = "google"
)

// provider junta a configuração OAuth e a leitura do perfil do usuário
type provider struct {
	config    *oauth2.Config
	fetchUser func(ctx context.Context, client *http.Client) (*ports.OAuthIdentity, error)
}

// OAuthService implementa ports.OAuthExchanger para GitHub e Google
type OAuthService struct {
	providers map[string]*provider
}

// NewOAuthService registra os provedores com client id configurado
func NewOAuthService(cfg *config.OAuthConfig) *OAuthService {
	s := &OAuthService{providers: make(map[string]*provider)}
	redirect := strings.TrimRight(cfg.RedirectURL, "/")

	if cfg.GitHubClientID != "" {
		s.providers[ProviderGitHub] = &provider{
			config: &oauth2.Config{
				ClientID:     cfg.GitHubClientID,
				ClientSecret: cfg.GitHubClientSecret,
				Endpoint:     github.Endpoint,
				RedirectURL:  redirect + "/" + ProviderGitHub,
				Scopes:       []string{"read:user", "user:email"},
			},
			fetchUser: fetchGitHubUser,
		}
	}

	if cfg.GoogleClientID != "" {
		s.providers[ProviderGoogle] = &provider{
			config: &oauth2.Config{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				Endpoint:     google.Endpoint,
				RedirectURL:  redirect + "/" + ProviderGoogle,
				Scopes:       []string{"openid", "email", "profile"},
			},
			fetchUser: fetchGoogleUser,
		}
	}

	return s
}

// Providers retorna os nomes dos provedores habilitados
func (s *OAuthService) Providers() []string {
	names := make([]string, 0, len(s.providers))
	for name := range s.providers {
		names = append(names, name)
	}
	return names
}

func (s *OAuthService) AuthCodeURL(name, state string) (string, error) {
	p, ok := s.providers[name]
	if !ok {
		return "", domainerrors.ErrUnknownOAuthProvider
	}
	return p.config.AuthCodeURL(state), nil
}

func (s *OAuthService) Exchange(ctx context.Context, name, code string) (*ports.OAuthIdentity, error) {
	p, ok := s.providers[name]
	if !ok {
		return nil, domainerrors.ErrUnknownOAuthProvider
	}

	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrOAuthExchangeFailed, err)
	}

	identity, err := p.fetchUser(ctx, p.config.Client(ctx, token))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrOAuthExchangeFailed, err)
	}
	identity.Provider = name
	return identity, nil
}

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func fetchGitHubUser(ctx context.Context, client *http.Client) (*ports.OAuthIdentity, error) {
	var user struct {
		ID    int64  `json:"id"`
		Login string `json:"login"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := getJSON(ctx, client, "https://api.github.com/user", &user); err != nil {
		return nil, err
	}

	// E-mail privado: buscar o primário verificado
	if user.Email == "" {
		var emails []struct {
			Email    string `json:"email"`
			Primary  bool   `json:"primary"`
			Verified bool   `json:"verified"`
		}
		if err := getJSON(ctx, client, "https://api.github.com/user/emails", &emails); err != nil {
			return nil, err
		}
		for _, e := range emails {
			if e.Primary && e.Verified {
				user.Email = e.Email
				break
			}
		}
	}
	if user.Email == "" {
		return nil, fmt.Errorf("github account has no verified email")
	}

	return &ports.OAuthIdentity{
		Subject:  strconv.FormatInt(user.ID, 10),
		Email:    user.Email,
		Username: user.Login,
		Name:     user.Name,
	}, nil
}

func fetchGoogleUser(ctx context.Context, client *http.Client) (*ports.OAuthIdentity, error) {
	var user struct {
		Sub           string `json:"sub"`
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
	}
	if err := getJSON(ctx, client, "https://openidconnect.googleapis.com/v1/userinfo", &user); err != nil {
		return nil, err
	}
	if user.Email == "" || !user.EmailVerified {
		return nil, fmt.Errorf("google account has no verified email")
	}

	username, _, _ := strings.Cut(user.Email, "@")
	return &ports.OAuthIdentity{
		Subject:  user.Sub,
		Email:    user.Email,
		Username: username,
		Name:     user.Name,
	}, nil
}

var _ ports.OAuthExchanger = (*OAuthService)(nil)
