package postgres

import "database/sql"

// Queryer é a superfície de consulta que os repositórios enxergam. Manter a
// dependência na interface, e não em *Connection, permite trocar a conexão
// por um sql.Tx ou um fake nos testes de repositório.
type Queryer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

var _ Queryer = (*Connection)(nil)
