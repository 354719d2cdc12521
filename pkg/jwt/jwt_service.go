package jwt

import (
	"TasteBite-Backend/domain"
	"TasteBite-Backend/internal/utils"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

type (
	// JWTService validates session tokens minted by the external identity
	// provider and extracts the caller's stable identity.
	JWTService interface {
		ValidateToken(token string) (*jwt.Token, error)
		GetIdentityByToken(token string) (Identity, error)
	}

	// Identity is the authenticated caller as described by the token claims.
	Identity struct {
		UserID   string
		Email    string
		FullName string
	}

	sessionClaims struct {
		UserID   string `json:"user_id"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	return utils.GetConfig("JWT_SECRET")
}

func NewJWTService() JWTService {
	return &jwtService{secretKey: getSecretKey()}
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &sessionClaims{}, j.parseToken)
}

func (j *jwtService) GetIdentityByToken(token string) (Identity, error) {
	t_Token, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, domain.ErrTokenExpired
		}
		return Identity{}, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return Identity{}, domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*sessionClaims)
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	return Identity{
		UserID:   claims.UserID,
		Email:    claims.Email,
		FullName: claims.FullName,
	}, nil
}
