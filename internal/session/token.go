package session

import (
    "github.com/golang-jwt/jwt/v5"
)

// ExpiryFromToken recovers the expiry instant (epoch milliseconds) from
// the access token's exp claim.  The signature is NOT verified — the
// client has no signing secret and treats the token as opaque; the claim
// is used only to fill in a missing accessTokenExpiresIn from a login
// response.  Returns 0 when the token is not a JWT or carries no exp.
func ExpiryFromToken(raw string) int64 {
    tok, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
    if err != nil {
        return 0
    }
    exp, err := tok.Claims.GetExpirationTime()
    if err != nil || exp == nil {
        return 0
    }
    return exp.UnixMilli()
}
