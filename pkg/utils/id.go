package utils

import (
	"fmt"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var (
	idMu       sync.Mutex
	lastIDUnix int64
)

// GenerateID gera um identificador curto aleatório
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GeneratePromotionID gera um identificador de promoção prefixado pela
// categoria, com componente de relógio estritamente crescente dentro do
// processo para garantir unicidade mesmo em criações no mesmo milissegundo.
func GeneratePromotionID(prefix string) (string, error) {
	idMu.Lock()
	now := time.Now().UnixMilli()
	if now <= lastIDUnix {
		now = lastIDUnix + 1
	}
	lastIDUnix = now
	idMu.Unlock()

	suffix, err := GenerateID()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%d-%s", prefix, now, suffix), nil
}
