package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto alfanumérico de 10 caracteres
func GenerateID() string {
	return gonanoid.MustGenerate(characters, 10)
}
