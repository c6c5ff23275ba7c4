package domain

import (
	"encoding/json"
	"time"
)

// Dashboard é uma configuração salva do painel (filtros, layout) pertencente
// a um usuário. Config é um documento JSON opaco definido pelo frontend.
type Dashboard struct {
	ID         int             `json:"id"`
	UserID     int             `json:"-"`
	Name       string          `json:"name"`
	Config     json.RawMessage `json:"config"`
	ShareToken *string         `json:"share_token,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
