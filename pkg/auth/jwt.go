package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrMissingToken     = errors.New("missing authentication token")
	ErrInvalidClaims    = errors.New("invalid token claims")
)

// DefaultTTL applies when a caller issues a token without a duration.
const DefaultTTL = 15 * time.Minute

// Claims represents the session token claims. PreferredUsername is
// mandatory: a token without it is treated exactly like an invalid one.
type Claims struct {
	PreferredUsername string `json:"preferred_username"`
	jwt.RegisteredClaims
}

// TokenConfig holds token service configuration
type TokenConfig struct {
	SigningMethod string // HS256 or RS256
	SecretKey     string // for HS256
	PublicKey     string // for RS256 verification
	PrivateKey    string // for RS256 signing
	Issuer        string // expected and emitted issuer
	DefaultTTL    time.Duration
}

// TokenService issues and validates signed session tokens. The same
// secret the database server signs its bearer tokens with is used here,
// so database-minted tokens decode cleanly.
type TokenService struct {
	signingMethod jwt.SigningMethod
	secretKey     []byte
	publicKey     *rsa.PublicKey
	privateKey    *rsa.PrivateKey
	issuer        string
	defaultTTL    time.Duration
}

// NewTokenService creates a new token service
func NewTokenService(config TokenConfig) (*TokenService, error) {
	svc := &TokenService{
		issuer:     config.Issuer,
		defaultTTL: config.DefaultTTL,
	}
	if svc.defaultTTL <= 0 {
		svc.defaultTTL = DefaultTTL
	}

	switch config.SigningMethod {
	case "RS256":
		svc.signingMethod = jwt.SigningMethodRS256
		if config.PublicKey == "" {
			return nil, errors.New("public key required for RS256")
		}
		pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(config.PublicKey))
		if err != nil {
			return nil, fmt.Errorf("failed to parse public key: %w", err)
		}
		svc.publicKey = pub
		if config.PrivateKey != "" {
			priv, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(config.PrivateKey))
			if err != nil {
				return nil, fmt.Errorf("failed to parse private key: %w", err)
			}
			svc.privateKey = priv
		}
	case "", "HS256":
		svc.signingMethod = jwt.SigningMethodHS256
		if config.SecretKey == "" {
			return nil, errors.New("secret key required for HS256")
		}
		svc.secretKey = []byte(config.SecretKey)
	default:
		return nil, fmt.Errorf("unsupported signing method: %s", config.SigningMethod)
	}

	return svc, nil
}

// Issue signs a session token for the given username. A non-positive ttl
// falls back to the configured default. Expiry is computed in UTC.
func (s *TokenService) Issue(username string, ttl time.Duration) (string, error) {
	if username == "" {
		return "", ErrInvalidClaims
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	now := time.Now().UTC()
	claims := &Claims{
		PreferredUsername: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(s.signingMethod, claims)

	var key interface{}
	switch s.signingMethod {
	case jwt.SigningMethodRS256:
		if s.privateKey == nil {
			return "", errors.New("no private key configured for RS256 signing")
		}
		key = s.privateKey
	default:
		key = s.secretKey
	}

	return token.SignedString(key)
}

// Decode validates a token and returns its claims. Every failure mode
// fails closed: bad signature, past expiry, malformed claims, missing
// preferred_username, and issuer mismatch are all rejections.
func (s *TokenService) Decode(tokenString string) (*Claims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	tokenString = strings.TrimPrefix(tokenString, "bearer ")
	tokenString = strings.TrimSpace(tokenString)

	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != s.signingMethod {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Method)
		}
		switch s.signingMethod {
		case jwt.SigningMethodRS256:
			return s.publicKey, nil
		case jwt.SigningMethodHS256:
			return s.secretKey, nil
		default:
			return nil, errors.New("unknown signing method")
		}
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		if errors.Is(err, jwt.ErrSignatureInvalid) {
			return nil, ErrInvalidSignature
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}

	if claims.PreferredUsername == "" {
		return nil, ErrInvalidClaims
	}

	if s.issuer != "" && claims.Issuer != s.issuer {
		return nil, fmt.Errorf("%w: invalid issuer", ErrInvalidClaims)
	}

	return claims, nil
}
