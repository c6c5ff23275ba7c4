package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateShareToken gera o token curto usado em links públicos de
// dashboards compartilhados.
func GenerateShareToken() (string, error) {
	return gonanoid.Generate(characters, 12)
}
