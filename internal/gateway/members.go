package gateway

import (
    "context"

    "github.com/cinecatch/client-core/internal/session"
)

type memberClient struct{ c *Client }

type signupReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
    Nickname string `json:"nickname"`
}

type loginReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}

func (m *memberClient) Signup(ctx context.Context, email, password, nickname string) error {
    return m.c.post(ctx, "/api/members/signup", signupReq{Email: email, Password: password, Nickname: nickname}, nil)
}

// Login exchanges credentials for a bearer session.  When the backend
// omits accessTokenExpiresIn the expiry is recovered from the token's exp
// claim so the session store can still invalidate lazily.
func (m *memberClient) Login(ctx context.Context, email, password string) (session.AuthSession, error) {
    var tok tokenDTO
    if err := m.c.post(ctx, "/api/members/login", loginReq{Email: email, Password: password}, &tok); err != nil {
        return session.AuthSession{}, err
    }
    sess := session.AuthSession{
        GrantType:            tok.GrantType,
        AccessToken:          tok.AccessToken,
        AccessTokenExpiresIn: tok.AccessTokenExpiresIn,
        Email:                email,
    }
    if sess.AccessTokenExpiresIn == 0 {
        sess.AccessTokenExpiresIn = session.ExpiryFromToken(sess.AccessToken)
    }
    return sess, nil
}

func (m *memberClient) RegisterFCMToken(ctx context.Context, token string) error {
    return m.c.post(ctx, "/api/members/fcm-token", map[string]string{"fcmToken": token}, nil)
}

func (m *memberClient) NotificationSettings(ctx context.Context) (bool, error) {
    var resp struct {
        Enabled bool `json:"enabled"`
    }
    if err := m.c.get(ctx, "/api/members/notification-settings", &resp); err != nil {
        return false, err
    }
    return resp.Enabled, nil
}

func (m *memberClient) UpdateNotificationSettings(ctx context.Context, enabled bool) error {
    return m.c.put(ctx, "/api/members/notification-settings", map[string]bool{"enabled": enabled}, nil)
}
