package utils

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GeneratePrefixedID gera ids no formato prefixo-<unix ms>-<nanoid>
func GeneratePrefixedID(prefix string) (string, error) {
	suffix, err := GenerateID()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix), nil
}
