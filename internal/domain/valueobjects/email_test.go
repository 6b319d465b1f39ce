package valueobjects

import (
	"errors"
	"testing"
)

func TestNewEmail(t *testing.T) {
	t.Run("aceita e normaliza email válido", func(t *testing.T) {
		email, err := NewEmail("  Joao.Silva@Example.COM ")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if email.String() != "joao.silva@example.com" {
			t.Errorf("esperava 'joao.silva@example.com', obteve '%s'", email.String())
		}
	})

	t.Run("rejeita formatos inválidos", func(t *testing.T) {
		invalids := []string{
			"",
			"semarroba.com",
			"@dominio.com",
			"usuario@",
			"usuario@dominio",
			"usuario com espaco@dominio.com",
		}
		for _, raw := range invalids {
			if _, err := NewEmail(raw); !errors.Is(err, ErrInvalidEmail) {
				t.Errorf("'%s': esperava ErrInvalidEmail, obteve %v", raw, err)
			}
		}
	})
}
