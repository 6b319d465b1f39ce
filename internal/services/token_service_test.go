package services

import (
	"errors"
	"testing"

	"github.com/Esamwell/mthubv2/internal/domain/entities"
	domainerrors "github.com/Esamwell/mthubv2/internal/domain/errors"
)

func TestTokenService(t *testing.T) {
	profile := &entities.Profile{ID: "user-1", UserType: entities.TipoAdmin}

	t.Run("round trip de emissão e validação", func(t *testing.T) {
		service := NewTokenService("segredo-de-teste", 24)

		token, err := service.Generate(profile)
		if err != nil {
			t.Fatalf("falha ao gerar token: %v", err)
		}

		claims, err := service.Validate(token)
		if err != nil {
			t.Fatalf("falha ao validar token: %v", err)
		}

		if claims.Subject != "user-1" {
			t.Errorf("esperava subject 'user-1', obteve '%s'", claims.Subject)
		}
		if claims.UserType != "admin" {
			t.Errorf("esperava user_type 'admin', obteve '%s'", claims.UserType)
		}
	})

	t.Run("rejeita token assinado com outro segredo", func(t *testing.T) {
		emissor := NewTokenService("segredo-a", 24)
		validador := NewTokenService("segredo-b", 24)

		token, err := emissor.Generate(profile)
		if err != nil {
			t.Fatalf("falha ao gerar token: %v", err)
		}

		if _, err := validador.Validate(token); !errors.Is(err, domainerrors.ErrUnauthorized) {
			t.Errorf("esperava ErrUnauthorized, obteve %v", err)
		}
	})

	t.Run("rejeita token mal formado", func(t *testing.T) {
		service := NewTokenService("segredo-de-teste", 24)

		if _, err := service.Validate("nao-e-um-jwt"); !errors.Is(err, domainerrors.ErrUnauthorized) {
			t.Errorf("esperava ErrUnauthorized, obteve %v", err)
		}
	})

	t.Run("rejeita token expirado", func(t *testing.T) {
		service := NewTokenService("segredo-de-teste", 24)
		service.expiry = -1

		token, err := service.Generate(profile)
		if err != nil {
			t.Fatalf("falha ao gerar token: %v", err)
		}

		if _, err := service.Validate(token); !errors.Is(err, domainerrors.ErrUnauthorized) {
			t.Errorf("esperava ErrUnauthorized, obteve %v", err)
		}
	})
}
