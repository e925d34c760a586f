package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafabene/threaddate-backend/internal/domain/errors"
	"github.com/rafabene/threaddate-backend/internal/domain/ports"
	"github.com/rafabene/threaddate-backend/internal/handlers/dto"
	"github.com/rafabene/threaddate-backend/internal/handlers/middleware"
	"github.com/rafabene/threaddate-backend/internal/services"
)

const oauthStateCookie = "oauth_state"

// AuthHandler lida com cadastro, login e sessão
type AuthHandler struct {
	authService *services.AuthService
	logger      ports.Logger
	secure      bool
}

// NewAuthHandler cria um novo AuthHandler.
// secure marca o cookie de state do OAuth como Secure (produção).
func NewAuthHandler(authService *services.AuthService, logger ports.Logger, secure bool) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
		secure:      secure,
	}
}

// SignUp godoc
// @Summary      Cria uma conta
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SignUpRequest  true  "Dados de cadastro"
// @Success      201      {object}  dto.SessionResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	session, err := h.authService.SignUp(c.Request.Context(), services.SignUpInput{
		Email:       req.Email,
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Password:    req.Password,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SessionResponse{
		Token:   session.Token,
		Profile: dto.ToProfileResponse(session.Profile),
	})
}

// Login godoc
// @Summary      Autentica com e-mail e senha
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.LoginRequest  true  "Credenciais"
// @Success      200      {object}  dto.SessionResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	session, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{
		Token:   session.Token,
		Profile: dto.ToProfileResponse(session.Profile),
	})
}

// ForgotPassword godoc
// @Summary      Solicita um link de redefinição de senha
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ForgotPasswordRequest  true  "E-mail da conta"
// @Success      202      {object}  dto.MessageResponse
// @Router       /auth/password/forgot [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.authService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.MessageResponse{Message: dto.T(c, "password_reset.requested")})
}

// ResetPassword godoc
// @Summary      Redefine a senha com o token recebido
// @Tags         auth
// @Accept       json
// @Param        request  body  dto.ResetPasswordRequest  true  "Token e nova senha"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /auth/password/reset [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// OAuthLogin godoc
// @Summary      Inicia o login com um provedor OAuth
// @Tags         auth
// @Param        provider  path  string  true  "github ou google"
// @Success      302
// @Router       /auth/oauth/{provider} [get]
func (h *AuthHandler) OAuthLogin(c *gin.Context) {
	state := uuid.NewString()

	target, err := h.authService.OAuthLoginURL(c.Param("provider"), state)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/", "", h.secure, true)
	c.Redirect(http.StatusFound, target)
}

// OAuthCallback godoc
// @Summary      Recebe o retorno do provedor OAuth
// @Tags         auth
// @Param        provider  path   string  true  "github ou google"
// @Param        code      query  string  true  "Código de autorização"
// @Param        state     query  string  true  "State emitido no início do login"
// @Success      302
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /auth/callback/{provider} [get]
func (h *AuthHandler) OAuthCallback(c *gin.Context) {
	expected, err := c.Cookie(oauthStateCookie)
	if err != nil || expected == "" || expected != c.Query("state") {
		respondError(c, h.logger, errors.ErrOAuthExchangeFailed)
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.secure, true)

	code := c.Query("code")
	if code == "" {
		respondError(c, h.logger, errors.ErrOAuthExchangeFailed)
		return
	}

	session, err := h.authService.OAuthCallback(c.Request.Context(), c.Param("provider"), code)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Redirect(http.StatusFound, h.authService.FrontendRedirect(session.Token))
}

// Me godoc
// @Summary      Retorna o perfil autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ProfileResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	profile, err := h.authService.Me(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}
