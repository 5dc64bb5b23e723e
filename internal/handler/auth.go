package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/cinecatch/client-core/internal/gateway"
    "github.com/cinecatch/client-core/internal/session"
)

// AuthHandler bundles dependencies for the auth screen: signup and login
// pass through to the backend, the resulting session is kept in the
// durable store.
type AuthHandler struct {
    Members  gateway.MemberService
    Sessions *session.Store
}

func NewAuthHandler(m gateway.MemberService, s *session.Store) *AuthHandler {
    return &AuthHandler{Members: m, Sessions: s}
}

// ----- DTOs -----

type signupReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
    Nickname string `json:"nickname"`
}

type loginReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}

type sessionResp struct {
    Email     string `json:"email"`
    GrantType string `json:"grantType"`
    ExpiresIn int64  `json:"accessTokenExpiresIn"`
}

// Signup validates the form and forwards it to the backend.
func (h *AuthHandler) Signup(c echo.Context) error {
    var req signupReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    if req.Email == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
    }
    if req.Nickname == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "nickname required"})
    }

    if err := h.Members.Signup(c.Request().Context(), req.Email, req.Password, req.Nickname); err != nil {
        return gatewayError(c, err)
    }
    return c.JSON(http.StatusCreated, echo.Map{"email": req.Email})
}

// Login exchanges credentials for a bearer session and persists it.
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    if req.Email == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
    }

    ctx := c.Request().Context()
    sess, err := h.Members.Login(ctx, req.Email, req.Password)
    if err != nil {
        return gatewayError(c, err)
    }
    if err := h.Sessions.Save(ctx, sess); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save session failed"})
    }

    return c.JSON(http.StatusOK, sessionResp{
        Email:     sess.Email,
        GrantType: sess.GrantType,
        ExpiresIn: sess.AccessTokenExpiresIn,
    })
}

// Logout clears the stored session.  Logging out while logged out is
// fine, the result is the same.
func (h *AuthHandler) Logout(c echo.Context) error {
    if err := h.Sessions.Clear(c.Request().Context()); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "clear session failed"})
    }
    return c.NoContent(http.StatusNoContent)
}

// Me reports the current session.  An expired or malformed record reads
// as logged out; the store already erased it.
func (h *AuthHandler) Me(c echo.Context) error {
    sess, err := h.Sessions.Load(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "read session failed"})
    }
    if sess == nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not logged in"})
    }
    return c.JSON(http.StatusOK, sessionResp{
        Email:     sess.Email,
        GrantType: sess.GrantType,
        ExpiresIn: sess.AccessTokenExpiresIn,
    })
}
