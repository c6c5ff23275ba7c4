package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *time.Time
		wantErr bool
	}{
		{
			name:  "string vazia devolve nil sem erro",
			input: "",
			want:  nil,
		},
		{
			name:  "data ISO válida",
			input: "2024-03-15",
			want:  timePtr(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:    "data malformada devolve erro",
			input:   "15/03/2024",
			wantErr: true,
		},
		{
			name:    "texto aleatório devolve erro",
			input:   "ontem",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDateRange(t *testing.T) {
	t.Run("datas explícitas são respeitadas", func(t *testing.T) {
		got, err := ResolveDateRange("2024-01-01", "2024-01-31")
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got.Start)
		assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), got.End)
	})

	t.Run("sem parâmetros assume últimos 30 dias", func(t *testing.T) {
		before := time.Now()
		got, err := ResolveDateRange("", "")
		require.NoError(t, err)

		assert.WithinDuration(t, before, got.End, time.Second)
		assert.Equal(t, got.End.AddDate(0, 0, -30), got.Start)
	})

	t.Run("apenas fim informado ancora o início 30 dias antes", func(t *testing.T) {
		got, err := ResolveDateRange("", "2024-06-30")
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), got.End)
		assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), got.Start)
	})

	t.Run("início inválido devolve erro", func(t *testing.T) {
		_, err := ResolveDateRange("invalida", "2024-06-30")
		assert.Error(t, err)
	})

	t.Run("fim inválido devolve erro", func(t *testing.T) {
		_, err := ResolveDateRange("2024-06-01", "30-06-2024")
		assert.Error(t, err)
	})
}

func timePtr(t time.Time) *time.Time {
	return &t
}
