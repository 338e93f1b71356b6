package authentication

import (
	"Listline/utils"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the claims of an access token issued by the identity provider.
type Claims struct {
	Email        string `json:"email"`
	UserMetadata struct {
		FullName string `json:"full_name"`
	} `json:"user_metadata"`
	jwt.RegisteredClaims
}

func (c Claims) UserId() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

type TokenVerifier struct {
	secret   []byte
	issuer   string
	audience string
}

func NewTokenVerifier(secret string, issuer string, audience string) *TokenVerifier {
	return &TokenVerifier{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
	}
}

// Verify checks signature, expiry, audience and, when configured, the issuer of tokenString.
func (v *TokenVerifier) Verify(tokenString string) (Claims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}

	if v.audience != "" {
		options = append(options, jwt.WithAudience(v.audience))
	}

	if v.issuer != "" {
		options = append(options, jwt.WithIssuer(v.issuer))
	}

	claims := Claims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return v.secret, nil
	}, options...)
	if err != nil {
		return Claims{}, fmt.Errorf("parsing token: %w: %w", err, utils.ErrHttpUnauthorized)
	}

	if !token.Valid {
		return Claims{}, utils.ErrHttpUnauthorized
	}

	if _, err := claims.UserId(); err != nil {
		return Claims{}, fmt.Errorf("subject is not a uuid: %w", utils.ErrHttpUnauthorized)
	}

	return claims, nil
}
