package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	stderrors "errors"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/domain/errors"
	"github.com/rafabene/threaddate-backend/internal/domain/ports"
	"github.com/rafabene/threaddate-backend/internal/domain/repositories"
	"github.com/rafabene/threaddate-backend/internal/domain/valueobjects"
)

const (
	PasswordMinLength = 8
	PasswordMaxLength = 72 // limite do bcrypt

	resetTokenBytes = 32
)

var (
	usernameInvalid = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)
)

// AuthService é o provedor de sessão: cadastro, login, OAuth e redefinição de senha
type AuthService struct {
	profileRepo repositories.ProfileRepository
	resetRepo   repositories.PasswordResetRepository
	uow         ports.UnitOfWork
	hasher      ports.PasswordHasher
	tokens      ports.TokenIssuer
	oauth       ports.OAuthExchanger
	mailer      ports.PasswordResetMailer
	logger      ports.Logger
	frontendURL string
	resetExpiry time.Duration
	now         func() time.Time
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	profileRepo repositories.ProfileRepository,
	resetRepo repositories.PasswordResetRepository,
	uow ports.UnitOfWork,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	oauth ports.OAuthExchanger,
	mailer ports.PasswordResetMailer,
	logger ports.Logger,
	frontendURL string,
	resetExpiry time.Duration,
) *AuthService {
	if resetExpiry <= 0 {
		resetExpiry = time.Hour
	}
	return &AuthService{
		profileRepo: profileRepo,
		resetRepo:   resetRepo,
		uow:         uow,
		hasher:      hasher,
		tokens:      tokens,
		oauth:       oauth,
		mailer:      mailer,
		logger:      logger,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		resetExpiry: resetExpiry,
		now:         time.Now,
	}
}

// Session é o resultado de um login bem-sucedido
type Session struct {
	Profile *entities.Profile
	Token   string
}

// SignUpInput representa os dados de cadastro
type SignUpInput struct {
	Email       string
	Username    string
	DisplayName string
	Password    string
}

// SignUp cria um perfil com papel user e já devolve a sessão
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*Session, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(input.Username)
	if !entities.ValidUsername(username) {
		return nil, errors.ErrInvalidUsername
	}

	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	existing, err := s.profileRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	existing, err = s.profileRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrUsernameAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		displayName = username
	}

	profile := &entities.Profile{
		Email:        email,
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: &hash,
		Role:         entities.RoleUser,
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if stderrors.Is(err, repositories.ErrDuplicate) {
			return nil, errors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	s.logger.Info("profile created", "profile_id", profile.ID, "username", profile.Username)
	return s.session(profile)
}

// SignIn autentica por e-mail e senha
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*Session, error) {
	normalized, err := valueobjects.NewEmail(email)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	profile, err := s.profileRepo.FindByEmail(ctx, normalized.String())
	if err != nil {
		return nil, err
	}
	if profile == nil || !profile.HasPassword() || !s.hasher.Compare(*profile.PasswordHash, password) {
		s.logger.Warn("sign in failed", "email", normalized.String())
		return nil, errors.ErrInvalidCredentials
	}

	return s.session(profile)
}

// Me retorna o perfil do chamador
func (s *AuthService) Me(ctx context.Context, callerID string) (*entities.Profile, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.ErrProfileNotFound
	}
	return profile, nil
}

// RequestPasswordReset sempre responde com sucesso para não revelar quais
// e-mails têm conta. Quando a conta existe, gera um token de uso único.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	normalized, err := valueobjects.NewEmail(email)
	if err != nil {
		return err
	}

	profile, err := s.profileRepo.FindByEmail(ctx, normalized.String())
	if err != nil {
		return err
	}
	if profile == nil {
		s.logger.Debug("password reset for unknown email", "email", normalized.String())
		return nil
	}

	token, err := newResetToken()
	if err != nil {
		return err
	}

	reset := &entities.PasswordReset{
		ProfileID: profile.ID,
		TokenHash: hashToken(token),
		ExpiresAt: s.now().Add(s.resetExpiry),
	}
	if err := s.resetRepo.Create(ctx, reset); err != nil {
		return err
	}

	link := s.frontendURL + "/reset-password?token=" + url.QueryEscape(token)
	if err := s.mailer.SendPasswordReset(ctx, profile.Email.String(), link); err != nil {
		s.logger.Error("password reset delivery failed", "profile_id", profile.ID, "error", err.Error())
		return err
	}

	return nil
}

// ResetPassword troca a senha usando um token válido, que é consumido
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return errors.ErrInvalidResetToken
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		reset, err := s.resetRepo.FindByTokenHash(txCtx, hashToken(token))
		if err != nil {
			return err
		}
		now := s.now()
		if reset == nil || !reset.IsUsable(now) {
			return errors.ErrInvalidResetToken
		}

		// duas requisições com o mesmo token: só uma consome
		claimed, err := s.resetRepo.MarkUsed(txCtx, reset, now)
		if err != nil {
			return err
		}
		if !claimed {
			return errors.ErrInvalidResetToken
		}

		profile, err := s.profileRepo.FindByID(txCtx, reset.ProfileID)
		if err != nil {
			return err
		}
		if profile == nil {
			return errors.ErrInvalidResetToken
		}

		profile.PasswordHash = &hash
		if err := s.profileRepo.Update(txCtx, profile); err != nil {
			return err
		}

		s.logger.Info("password reset", "profile_id", profile.ID)
		return nil
	})
}

// OAuthLoginURL devolve a URL de autorização do provedor
func (s *AuthService) OAuthLoginURL(provider, state string) (string, error) {
	return s.oauth.AuthCodeURL(provider, state)
}

// OAuthCallback troca o código pela identidade do provedor e vincula ou cria
// o perfil correspondente. Contas existentes são vinculadas pelo e-mail.
func (s *AuthService) OAuthCallback(ctx context.Context, provider, code string) (*Session, error) {
	identity, err := s.oauth.Exchange(ctx, provider, code)
	if err != nil {
		if stderrors.Is(err, errors.ErrUnknownOAuthProvider) {
			return nil, err
		}
		s.logger.Error("oauth exchange failed", "provider", provider, "error", err.Error())
		return nil, errors.ErrOAuthExchangeFailed
	}

	profile, err := s.profileRepo.FindByOAuth(ctx, identity.Provider, identity.Subject)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return s.session(profile)
	}

	email, err := valueobjects.NewEmail(identity.Email)
	if err != nil {
		s.logger.Warn("oauth identity without usable email", "provider", identity.Provider)
		return nil, errors.ErrOAuthExchangeFailed
	}

	profile, err = s.profileRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}

	if profile != nil {
		profile.OAuthProvider = &identity.Provider
		profile.OAuthSubject = &identity.Subject
		if err := s.profileRepo.Update(ctx, profile); err != nil {
			return nil, err
		}
		s.logger.Info("oauth identity linked", "profile_id", profile.ID, "provider", identity.Provider)
		return s.session(profile)
	}

	username, err := s.availableUsername(ctx, identity)
	if err != nil {
		return nil, err
	}

	displayName := strings.TrimSpace(identity.Name)
	if displayName == "" {
		displayName = username
	}

	profile = &entities.Profile{
		Email:         email,
		Username:      username,
		DisplayName:   displayName,
		OAuthProvider: &identity.Provider,
		OAuthSubject:  &identity.Subject,
		Role:          entities.RoleUser,
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("profile created", "profile_id", profile.ID, "provider", identity.Provider)
	return s.session(profile)
}

// FrontendRedirect monta a URL do frontend com o token no fragmento
func (s *AuthService) FrontendRedirect(token string) string {
	return s.frontendURL + "/auth/callback#token=" + url.QueryEscape(token)
}

// availableUsername deriva um username livre a partir da identidade OAuth
func (s *AuthService) availableUsername(ctx context.Context, identity *ports.OAuthIdentity) (string, error) {
	base := identity.Username
	if base == "" {
		if email, err := valueobjects.NewEmail(identity.Email); err == nil {
			base = email.LocalPart()
		}
	}
	base = usernameInvalid.ReplaceAllString(base, "")
	if len(base) > 20 {
		base = base[:20]
	}
	for len(base) < 3 {
		base += "_"
	}

	candidate := base
	for attempt := 0; attempt < 5; attempt++ {
		existing, err := s.profileRepo.FindByUsername(ctx, candidate)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return candidate, nil
		}
		candidate = base + "-" + uuid.NewString()[:8]
	}
	return "", errors.ErrUsernameAlreadyExists
}

func (s *AuthService) session(profile *entities.Profile) (*Session, error) {
	token, err := s.tokens.Issue(profile)
	if err != nil {
		return nil, err
	}
	return &Session{Profile: profile, Token: token}, nil
}

func validatePassword(password string) error {
	if len(password) < PasswordMinLength || len(password) > PasswordMaxLength {
		return errors.ErrWeakPassword
	}
	return nil
}

func newResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// hashToken é o que fica persistido; o token em claro só existe no link
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
