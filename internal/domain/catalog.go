package domain

import "time"

type Product struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	CategoryID *int   `json:"categoryId"`
}

type Category struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	DeletedAt *time.Time `json:"-"`
}

type Channel struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type Store struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	State    string `json:"state"`
	IsActive bool   `json:"-"`
}

// FilterOptions agrupa os dados de referência exibidos nos filtros do
// dashboard: todos os canais, apenas lojas ativas e categorias não removidas.
type FilterOptions struct {
	Channels   []*Channel  `json:"channels"`
	Stores     []*Store    `json:"stores"`
	Categories []*Category `json:"categories"`
}
