package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/infrastructure/config"
)

func TestJWTService(t *testing.T) {
	profile := &entities.Profile{ID: "p1", Role: entities.RoleAdmin}

	t.Run("emite e valida token", func(t *testing.T) {
		s := NewJWTService("secret", time.Hour)

		token, err := s.Issue(profile)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		claims, err := s.Parse(token)
		if err != nil {
			t.Fatalf("esperava token válido, obteve erro: %v", err)
		}
		if claims.ProfileID != "p1" || claims.Role != entities.RoleAdmin {
			t.Errorf("claims inesperadas: %+v", claims)
		}
	})

	t.Run("rejeita token assinado com outro segredo", func(t *testing.T) {
		token, _ := NewJWTService("other", time.Hour).Issue(profile)

		if _, err := NewJWTService("secret", time.Hour).Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("esperava ErrInvalidToken, obteve %v", err)
		}
	})

	t.Run("rejeita token expirado", func(t *testing.T) {
		s := NewJWTService("secret", time.Minute)
		s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, _ := s.Issue(profile)

		if _, err := NewJWTService("secret", time.Minute).Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("esperava ErrInvalidToken, obteve %v", err)
		}
	})
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("correct horse")
	if err != nil {
		t.Fatalf("esperava sucesso, obteve erro: %v", err)
	}
	if !h.Compare(hash, "correct horse") {
		t.Error("senha correta deveria conferir")
	}
	if h.Compare(hash, "wrong") {
		t.Error("senha errada não deveria conferir")
	}
}

func TestOAuthService_Providers(t *testing.T) {
	s := NewOAuthService(&config.OAuthConfig{
		GitHubClientID:     "gh",
		GitHubClientSecret: "secret",
		RedirectURL:        "http://localhost:8080/api/v1/auth/callback/",
	})

	url, err := s.AuthCodeURL(ProviderGitHub, "state123")
	if err != nil {
		t.Fatalf("esperava sucesso, obteve erro: %v", err)
	}
	if url == "" {
		t.Error("esperava URL de autorização")
	}

	if _, err := s.AuthCodeURL(ProviderGoogle, "state"); err == nil {
		t.Error("google não configurado deveria falhar")
	}
}
