package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ActorClaims привязывают токен к действующему лицу (админ или внутренний модуль).
// ActorID попадает в created_by/updated_by операций леджера.
type ActorClaims struct {
	jwt.RegisteredClaims
	ActorID string
}

func GenerateActorJWT(actorID string, expire time.Duration, key []byte) (string, error) {
	actorClaims := ActorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
		ActorID: actorID,
	}
	token, err := generateJWT(actorClaims, key)
	if err != nil {
		return "", fmt.Errorf("generating actor jwt token: %s", err.Error())
	}
	return token, nil
}

func ValidateActorJWT(tokenString string, key []byte) (*jwt.Token, error) {
	token, err := validateJWT(tokenString, new(ActorClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating actor jwt token: %w", err)
	}

	_, ok := token.Claims.(*ActorClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return token, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %s", err.Error())
	}

	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	return token, nil
}
