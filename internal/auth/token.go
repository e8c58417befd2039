package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fileapi/internal/apperr"
	"fileapi/internal/config"
	"fileapi/internal/model"
)

// Claims is the JWT payload for authenticated users.
type Claims struct {
	UserID   string `json:"uid"`
	Username string `json:"uname"`
	jwt.RegisteredClaims
}

// TokenIssuer creates and verifies self-contained HS256 bearer tokens.
// Verification is a pure function of the token string: signature plus expiry,
// no server-side session state.
type TokenIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenIssuer builds an issuer from JWT config. The error is returned for a
// missing secret so startup fails loudly instead of signing with an empty key.
func NewTokenIssuer(cfg config.JWTConfig) (*TokenIssuer, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	ttl := time.Duration(cfg.ExpirationSec) * time.Second
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenIssuer{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    ttl,
	}, nil
}

// Issue signs a token for the given user, valid from now until now+ttl.
func (t *TokenIssuer) Issue(userID, username string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(t.ttl)
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	return signed, exp, err
}

// Verify validates signature and expiry and returns the embedded principal.
// Every failure mode maps to apperr.ErrInvalidToken; callers do not learn
// whether the signature or the expiry was at fault.
func (t *TokenIssuer) Verify(tokenString string) (*model.Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, apperr.ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperr.ErrInvalidToken
	}
	return &model.Principal{UserID: claims.UserID, Username: claims.Username}, nil
}
