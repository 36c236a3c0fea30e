package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

// Issuer is written into every session token and required on validation.
const Issuer = "strokescan"

var TimeNow = time.Now
var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")

type TokenInfo struct {
	UserName   string
	Subject    string
	Role       string
	Expiration time.Duration
}

type JWTService struct {
	secret []byte
	parser *jwt.Parser
}

func NewJWTService(jwtSecret []byte) *JWTService {
	return &JWTService{
		secret: jwtSecret,
		parser: &jwt.Parser{
			ValidMethods: []string{jwt.SigningMethodHS512.Alg()},
		},
	}
}

// Generate builds an unsigned session token for data.
func (gen *JWTService) Generate(data TokenInfo) *jwt.Token {
	now := TimeNow()
	return jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"iss":      Issuer,
		"sub":      data.Subject,
		"iat":      now.Unix(),
		"exp":      now.Add(data.Expiration).Unix(),
		"username": data.UserName,
		"role":     data.Role,
	})
}

func (gen *JWTService) Sign(token *jwt.Token) (string, error) {
	signed, err := token.SignedString(gen.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Validate checks signature, issuer and expiry and returns the claims.
func (gen *JWTService) Validate(token string) (jwt.MapClaims, error) {
	parsed, err := gen.parser.Parse(token, func(*jwt.Token) (interface{}, error) {
		return gen.secret, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenNotValid
	}

	if !claims.VerifyIssuer(Issuer, true) {
		return nil, fmt.Errorf("unexpected issuer %v: %w", claims["iss"], ErrTokenNotValid)
	}
	if sub, _ := claims["sub"].(string); sub == "" {
		return nil, fmt.Errorf("missing subject: %w", ErrTokenNotValid)
	}

	// exp is compared against TimeNow as well so tests can move the clock
	if exp, ok := claims["exp"].(float64); ok && int64(exp) < TimeNow().Unix() {
		return nil, fmt.Errorf("token expired at %v: %w", time.Unix(int64(exp), 0), ErrTokenExpired)
	}

	return claims, nil
}
