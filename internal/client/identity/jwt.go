package identity

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of an OpenID Connect ID token we rely on.
type Claims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

// JWTVerifier validates ID tokens signed with a configured key.
type JWTVerifier struct {
	key     any
	methods []string
	opts    []jwt.ParserOption
}

func newJWTVerifier(key any, methods []string, issuer, audience string) *JWTVerifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods(methods),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	return &JWTVerifier{key: key, methods: methods, opts: opts}
}

// NewHMACVerifier accepts HS256/384/512 tokens signed with secret.
func NewHMACVerifier(secret []byte, issuer, audience string) *JWTVerifier {
	return newJWTVerifier(secret, []string{"HS256", "HS384", "HS512"}, issuer, audience)
}

// NewRSAVerifier accepts RS256 tokens signed by the key in publicKeyPEM.
func NewRSAVerifier(publicKeyPEM []byte, issuer, audience string) (*JWTVerifier, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("parse rsa public key: %w", err)
	}
	return newJWTVerifier(key, []string{"RS256"}, issuer, audience), nil
}

func (v *JWTVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	if err := ctx.Err(); err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrVerificationUnavailable, err)
	}

	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.key, nil
	}, v.opts...)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}
	if !tkn.Valid {
		return Identity{}, ErrVerificationFailed
	}

	return Identity{
		Subject:       claims.Subject,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
	}, nil
}
