package util

import (
	"crypto/rand"
	"github.com/google/uuid"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	alphanumeric      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	upperAlphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	InviteTokenLength = 20
	eventIDRandomPart = 10
)

// GenerateID : идентификатор загрузки или сессии
func GenerateID() string {
	return uuid.New().String()
}

// GenerateEventID : evt_ + случайная часть + время в base36
func GenerateEventID() string {
	random, err := randomString(upperAlphanumeric, eventIDRandomPart)
	if err != nil {
		random = strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:eventIDRandomPart]
	}
	timestamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	return "evt_" + random + timestamp
}

// GenerateInviteToken : токен приглашения для гостей.
// Трудно угадать, но это не криптографическая граница доступа.
func GenerateInviteToken() (string, error) {
	token, err := randomString(alphanumeric, InviteTokenLength)
	if err != nil {
		return "", LogError("[util] ошибка генерации токена", err)
	}
	return token, nil
}

// GenerateUniqueInviteToken : повторяет генерацию, пока exists возвращает true
func GenerateUniqueInviteToken(exists func(token string) bool) (string, error) {
	for {
		token, err := GenerateInviteToken()
		if err != nil {
			return "", err
		}
		if !exists(token) {
			return token, nil
		}
	}
}

func randomString(alphabet string, length int) (string, error) {
	limit := big.NewInt(int64(len(alphabet)))
	var builder strings.Builder
	builder.Grow(length)

	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		builder.WriteByte(alphabet[n.Int64()])
	}

	return builder.String(), nil
}
