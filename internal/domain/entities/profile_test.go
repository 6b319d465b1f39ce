package entities

import (
	"testing"

	"github.com/Esamwell/mthubv2/internal/domain/valueobjects"
)

func mustEmail(t *testing.T, raw string) valueobjects.Email {
	t.Helper()
	email, err := valueobjects.NewEmail(raw)
	if err != nil {
		t.Fatalf("email inválido no setup: %v", err)
	}
	return email
}

func TestTipoUsuario_IsValid(t *testing.T) {
	tests := []struct {
		tipo     TipoUsuario
		expected bool
	}{
		{TipoAdmin, true},
		{TipoCliente, true},
		{"gerente", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.tipo), func(t *testing.T) {
			if got := tt.tipo.IsValid(); got != tt.expected {
				t.Errorf("tipo '%s': esperava %v, obteve %v", tt.tipo, tt.expected, got)
			}
		})
	}
}

func TestProfile_IsAdmin(t *testing.T) {
	admin := &Profile{UserType: TipoAdmin}
	if !admin.IsAdmin() {
		t.Error("admin deveria ter acesso administrativo")
	}

	cliente := &Profile{UserType: TipoCliente}
	if cliente.IsAdmin() {
		t.Error("cliente não deveria ter acesso administrativo")
	}
}

func TestProfile_Validate(t *testing.T) {
	valid := func() *Profile {
		return &Profile{
			Nome:     "Maria Silva",
			Email:    mustEmail(t, "maria@example.com"),
			UserType: TipoCliente,
		}
	}

	t.Run("perfil válido", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Errorf("esperava sucesso, obteve erro: %v", err)
		}
	})

	t.Run("email obrigatório", func(t *testing.T) {
		p := valid()
		p.Email = valueobjects.Email{}
		if err := p.Validate(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("nome obrigatório", func(t *testing.T) {
		p := valid()
		p.Nome = ""
		if err := p.Validate(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("nome muito curto", func(t *testing.T) {
		p := valid()
		p.Nome = "M"
		if err := p.Validate(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("user_type fora do vocabulário", func(t *testing.T) {
		p := valid()
		p.UserType = "gerente"
		if err := p.Validate(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})
}
