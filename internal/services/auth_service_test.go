package services_test

import (
	"context"
	stderrors "errors"
	"net/url"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/domain/errors"
	"github.com/rafabene/threaddate-backend/internal/domain/ports"
	"github.com/rafabene/threaddate-backend/internal/domain/repositories"
	"github.com/rafabene/threaddate-backend/internal/infrastructure/auth"
	"github.com/rafabene/threaddate-backend/internal/services"
	"github.com/rafabene/threaddate-backend/internal/testutil"
)

// unusedSnapshotResetRepo devolve o token como se ainda não tivesse sido usado,
// igual a uma leitura feita antes de outra requisição consumi-lo
type unusedSnapshotResetRepo struct {
	repositories.PasswordResetRepository
}

func (r unusedSnapshotResetRepo) FindByTokenHash(ctx context.Context, tokenHash string) (*entities.PasswordReset, error) {
	reset, err := r.PasswordResetRepository.FindByTokenHash(ctx, tokenHash)
	if reset != nil {
		reset.UsedAt = nil
	}
	return reset, err
}

var _ = Describe("AuthService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv()
	})

	signUp := func(email, username string) *services.Session {
		GinkgoHelper()
		session, err := e.authSvc.SignUp(e.ctx, services.SignUpInput{
			Email:    email,
			Username: username,
			Password: "correct horse",
		})
		Expect(err).NotTo(HaveOccurred())
		return session
	}

	resetToken := func() string {
		GinkgoHelper()
		Expect(e.mailer.sent).NotTo(BeEmpty())
		link, err := url.Parse(e.mailer.sent[len(e.mailer.sent)-1].Link)
		Expect(err).NotTo(HaveOccurred())
		return link.Query().Get("token")
	}

	Describe("SignUp", func() {
		It("creates a user profile and returns a valid session", func() {
			session := signUp("Ana@Example.com", "ana")

			Expect(session.Profile.Email.String()).To(Equal("ana@example.com"))
			Expect(session.Profile.Role).To(Equal(entities.RoleUser))
			Expect(session.Profile.Reputation).To(BeZero())
			Expect(session.Profile.DisplayName).To(Equal("ana"))

			claims, err := e.jwt.Parse(session.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.ProfileID).To(Equal(session.Profile.ID))
			Expect(claims.Role).To(Equal(entities.RoleUser))
		})

		It("rejects duplicate emails and usernames", func() {
			signUp("ana@example.com", "ana")

			_, err := e.authSvc.SignUp(e.ctx, services.SignUpInput{Email: "ana@example.com", Username: "other", Password: "correct horse"})
			Expect(err).To(MatchError(errors.ErrEmailAlreadyExists))

			_, err = e.authSvc.SignUp(e.ctx, services.SignUpInput{Email: "other@example.com", Username: "ana", Password: "correct horse"})
			Expect(err).To(MatchError(errors.ErrUsernameAlreadyExists))
		})

		DescribeTable("validates input",
			func(in services.SignUpInput, expected error) {
				_, err := e.authSvc.SignUp(e.ctx, in)
				Expect(err).To(MatchError(expected))
			},
			Entry("email", services.SignUpInput{Email: "nope", Username: "ana", Password: "correct horse"}, errors.ErrInvalidEmail),
			Entry("username", services.SignUpInput{Email: "a@b.io", Username: "a b", Password: "correct horse"}, errors.ErrInvalidUsername),
			Entry("short password", services.SignUpInput{Email: "a@b.io", Username: "ana", Password: "short"}, errors.ErrWeakPassword),
			Entry("long password", services.SignUpInput{Email: "a@b.io", Username: "ana", Password: strings.Repeat("p", 73)}, errors.ErrWeakPassword),
		)
	})

	Describe("SignIn", func() {
		BeforeEach(func() {
			signUp("ana@example.com", "ana")
		})

		It("returns a session for the right password", func() {
			session, err := e.authSvc.SignIn(e.ctx, "ANA@example.com", "correct horse")
			Expect(err).NotTo(HaveOccurred())
			Expect(session.Token).NotTo(BeEmpty())
		})

		It("rejects a wrong password or unknown email the same way", func() {
			_, err := e.authSvc.SignIn(e.ctx, "ana@example.com", "wrong password")
			Expect(err).To(MatchError(errors.ErrInvalidCredentials))

			_, err = e.authSvc.SignIn(e.ctx, "ghost@example.com", "correct horse")
			Expect(err).To(MatchError(errors.ErrInvalidCredentials))
		})
	})

	Describe("password reset", func() {
		BeforeEach(func() {
			signUp("ana@example.com", "ana")
		})

		It("resets the password once with the mailed token", func() {
			Expect(e.authSvc.RequestPasswordReset(e.ctx, "ana@example.com")).To(Succeed())
			Expect(e.mailer.sent[0].Email).To(Equal("ana@example.com"))
			Expect(e.mailer.sent[0].Link).To(HavePrefix("http://localhost:3000/reset-password?token="))

			token := resetToken()
			Expect(e.authSvc.ResetPassword(e.ctx, token, "new secret pass")).To(Succeed())

			_, err := e.authSvc.SignIn(e.ctx, "ana@example.com", "new secret pass")
			Expect(err).NotTo(HaveOccurred())

			err = e.authSvc.ResetPassword(e.ctx, token, "another pass 123")
			Expect(err).To(MatchError(errors.ErrInvalidResetToken))
		})

		It("consumes the token only once when a second request read it as unused", func() {
			Expect(e.authSvc.RequestPasswordReset(e.ctx, "ana@example.com")).To(Succeed())
			token := resetToken()
			Expect(e.authSvc.ResetPassword(e.ctx, token, "new secret pass")).To(Succeed())

			racing := services.NewAuthService(e.profiles, unusedSnapshotResetRepo{e.resets}, e.uow,
				auth.NewBcryptHasher(bcrypt.MinCost), e.jwt, e.oauth, e.mailer, testutil.NopLogger{},
				"http://localhost:3000", time.Hour)

			err := racing.ResetPassword(e.ctx, token, "another pass 123")
			Expect(err).To(MatchError(errors.ErrInvalidResetToken))

			_, err = e.authSvc.SignIn(e.ctx, "ana@example.com", "new secret pass")
			Expect(err).NotTo(HaveOccurred())
		})

		It("does not reveal unknown emails", func() {
			Expect(e.authSvc.RequestPasswordReset(e.ctx, "ghost@example.com")).To(Succeed())
			Expect(e.mailer.sent).To(BeEmpty())
		})

		It("rejects unknown tokens", func() {
			Expect(e.authSvc.ResetPassword(e.ctx, "deadbeef", "new secret pass")).To(MatchError(errors.ErrInvalidResetToken))
		})
	})

	Describe("OAuthCallback", func() {
		It("creates a profile for a new identity and reuses it afterwards", func() {
			e.oauth.identity = &ports.OAuthIdentity{
				Provider: "github",
				Subject:  "12345",
				Email:    "octo@example.com",
				Username: "octocat",
				Name:     "The Octocat",
			}

			first, err := e.authSvc.OAuthCallback(e.ctx, "github", "code")
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Profile.Username).To(Equal("octocat"))
			Expect(first.Profile.HasPassword()).To(BeFalse())

			second, err := e.authSvc.OAuthCallback(e.ctx, "github", "code")
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Profile.ID).To(Equal(first.Profile.ID))
		})

		It("links the identity to an existing account with the same email", func() {
			existing := signUp("octo@example.com", "octo")
			e.oauth.identity = &ports.OAuthIdentity{Provider: "google", Subject: "g-1", Email: "octo@example.com"}

			session, err := e.authSvc.OAuthCallback(e.ctx, "google", "code")
			Expect(err).NotTo(HaveOccurred())
			Expect(session.Profile.ID).To(Equal(existing.Profile.ID))
			Expect(*session.Profile.OAuthProvider).To(Equal("google"))
		})

		It("picks a free username when the preferred one is taken", func() {
			signUp("someone@example.com", "octocat")
			e.oauth.identity = &ports.OAuthIdentity{Provider: "github", Subject: "1", Email: "octo@example.com", Username: "octocat"}

			session, err := e.authSvc.OAuthCallback(e.ctx, "github", "code")
			Expect(err).NotTo(HaveOccurred())
			Expect(session.Profile.Username).To(HavePrefix("octocat-"))
		})

		It("maps provider failures to a generic exchange error", func() {
			e.oauth.err = stderrors.New("boom")

			_, err := e.authSvc.OAuthCallback(e.ctx, "github", "code")
			Expect(err).To(MatchError(errors.ErrOAuthExchangeFailed))
		})

		It("keeps the unknown provider error", func() {
			e.oauth.err = errors.ErrUnknownOAuthProvider

			_, err := e.authSvc.OAuthCallback(e.ctx, "myspace", "code")
			Expect(err).To(MatchError(errors.ErrUnknownOAuthProvider))
		})
	})

	Describe("Me", func() {
		It("returns the caller profile", func() {
			session := signUp("ana@example.com", "ana")

			profile, err := e.authSvc.Me(e.ctx, session.Profile.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.Username).To(Equal("ana"))
		})

		It("requires a session", func() {
			_, err := e.authSvc.Me(e.ctx, "")
			Expect(err).To(MatchError(errors.ErrAuthenticationRequired))
		})
	})
})
