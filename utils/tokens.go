package utils

import (
	"crypto/rand"
	"os"
	"time"

	"github.com/kataras/iris/v12/middleware/jwt"
)

// ParticipantToken is the claims payload handed to a participant when they
// create or join an outing. It is an idempotency credential, not a login:
// it only proves "this device already joined outing X as participant Y".
type ParticipantToken struct {
	ID          uint `json:"id"`
	OutingID    uint `json:"outingID"`
	IsOrganizer bool `json:"isOrganizer"`
}

func CreateParticipantToken(id uint, outingID uint, isOrganizer bool) (string, error) {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("PARTICIPANT_TOKEN_SECRET"), 90*24*time.Hour)

	claims := ParticipantToken{
		ID:          id,
		OutingID:    outingID,
		IsOrganizer: isOrganizer,
	}

	token, err := signer.Sign(claims)
	if err != nil {
		return "", err
	}

	return string(token), nil
}

// GenerateShortToken returns a URL-safe random string of the given length (bytes*2 hex).
func GenerateShortToken(n int) string {
	b := make([]byte, n)
	_, err := rand.Read(b)
	if err != nil {
		return ""
	}
	const hex = "0123456789abcdef"
	out := make([]byte, n*2)
	for i, v := range b {
		out[i*2] = hex[v>>4]
		out[i*2+1] = hex[v&0x0f]
	}
	return string(out)
}
