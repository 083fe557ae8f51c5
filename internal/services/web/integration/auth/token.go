package auth

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "github.com/louisbranch/clearance/internal/services/web/platform/errors"
)

const invalidTokenKey = "error.web.message.invalid_login_token"

// TokenConfig defines how identity tokens are verified.
type TokenConfig struct {
	Issuer   string
	Audience string
	Key      ed25519.PublicKey
	Now      func() time.Time
}

// Identity captures validated identity token claims.
type Identity struct {
	Issuer    string
	Audience  []string
	Subject   string
	JWTID     string
	ExpiresAt time.Time
	IssuedAt  time.Time
	Name      string
	Email     string
	Picture   string
}

// IdentityClaims is the JWT payload issued by the identity provider.
type IdentityClaims struct {
	jwt.RegisteredClaims
	Name    string `json:"name,omitempty"`
	Email   string `json:"email"`
	Picture string `json:"picture,omitempty"`
}

// NewTokenConfig validates raw verifier settings. publicKey is base64, with
// or without padding.
func NewTokenConfig(issuer string, audience string, publicKey string, now func() time.Time) (TokenConfig, error) {
	issuer = strings.TrimSpace(issuer)
	audience = strings.TrimSpace(audience)
	publicKey = strings.TrimSpace(publicKey)
	if issuer == "" {
		return TokenConfig{}, fmt.Errorf("CLEARANCE_IDENTITY_TOKEN_ISSUER is required")
	}
	if audience == "" {
		return TokenConfig{}, fmt.Errorf("CLEARANCE_IDENTITY_TOKEN_AUDIENCE is required")
	}
	if publicKey == "" {
		return TokenConfig{}, fmt.Errorf("CLEARANCE_IDENTITY_TOKEN_PUBLIC_KEY is required")
	}
	keyBytes, err := DecodeKey(publicKey)
	if err != nil {
		return TokenConfig{}, fmt.Errorf("decode identity token public key: %w", err)
	}
	if len(keyBytes) != ed25519.PublicKeySize {
		return TokenConfig{}, fmt.Errorf("identity token public key must be %d bytes", ed25519.PublicKeySize)
	}
	if now == nil {
		now = time.Now
	}
	return TokenConfig{
		Issuer:   issuer,
		Audience: audience,
		Key:      ed25519.PublicKey(keyBytes),
		Now:      now,
	}, nil
}

// ValidateToken verifies an identity token signature and its claims.
func ValidateToken(raw string, cfg TokenConfig) (Identity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Identity{}, invalidToken("identity token is required")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Issuer == "" || cfg.Audience == "" || len(cfg.Key) != ed25519.PublicKeySize {
		return Identity{}, apperrors.E(apperrors.KindUnavailable, "identity token verifier is not configured")
	}

	var parsed IdentityClaims
	_, err := jwt.ParseWithClaims(raw, &parsed, func(*jwt.Token) (any, error) {
		return cfg.Key, nil
	},
		jwt.WithValidMethods([]string{"EdDSA"}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return Identity{}, mapJWTError(err)
	}

	if parsed.Issuer == "" || parsed.Issuer != cfg.Issuer {
		return Identity{}, invalidToken("identity token issuer mismatch")
	}
	if !slices.Contains([]string(parsed.Audience), cfg.Audience) {
		return Identity{}, invalidToken("identity token audience mismatch")
	}
	if parsed.ID == "" {
		return Identity{}, invalidToken("identity token jti is required")
	}
	if strings.TrimSpace(parsed.Subject) == "" {
		return Identity{}, invalidToken("identity token sub is required")
	}
	if strings.TrimSpace(parsed.Email) == "" {
		return Identity{}, invalidToken("identity token email is required")
	}
	if parsed.ExpiresAt == nil {
		return Identity{}, invalidToken("identity token exp is required")
	}

	now := cfg.Now().UTC()
	exp := parsed.ExpiresAt.Time.UTC()
	if !exp.After(now) {
		return Identity{}, invalidToken("identity token is expired")
	}
	if parsed.NotBefore != nil && now.Before(parsed.NotBefore.Time.UTC()) {
		return Identity{}, invalidToken("identity token not active yet")
	}

	identity := Identity{
		Issuer:    parsed.Issuer,
		Audience:  []string(parsed.Audience),
		Subject:   parsed.Subject,
		JWTID:     parsed.ID,
		ExpiresAt: exp,
		Name:      strings.TrimSpace(parsed.Name),
		Email:     strings.TrimSpace(parsed.Email),
		Picture:   strings.TrimSpace(parsed.Picture),
	}
	if parsed.IssuedAt != nil {
		identity.IssuedAt = parsed.IssuedAt.Time.UTC()
	}
	return identity, nil
}

// MintToken signs identity claims with key. A missing jti is generated.
func MintToken(key ed25519.PrivateKey, claims IdentityClaims) (string, error) {
	if len(key) != ed25519.PrivateKeySize {
		return "", fmt.Errorf("identity token private key must be %d bytes", ed25519.PrivateKeySize)
	}
	if claims.ID == "" {
		claims.ID = uuid.NewString()
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign identity token: %w", err)
	}
	return signed, nil
}

// DecodeKey decodes base64 key material, with or without padding.
func DecodeKey(value string) ([]byte, error) {
	if value == "" {
		return nil, errors.New("empty base64 value")
	}
	decoded, err := base64.RawStdEncoding.DecodeString(value)
	if err == nil {
		return decoded, nil
	}
	return base64.StdEncoding.DecodeString(value)
}

// mapJWTError translates jwt library errors to application errors.
func mapJWTError(err error) error {
	if errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrEd25519Verification) {
		return invalidToken("identity token signature is invalid")
	}
	if errors.Is(err, jwt.ErrTokenUnverifiable) {
		return invalidToken("identity token alg is invalid")
	}
	return invalidToken("identity token is invalid")
}

func invalidToken(message string) error {
	return apperrors.EK(apperrors.KindUnauthorized, invalidTokenKey, message)
}
