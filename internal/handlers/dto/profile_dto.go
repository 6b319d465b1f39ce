package dto

import (
	"time"

	"github.com/Esamwell/mthubv2/internal/domain/entities"
)

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// RegisterRequest representa a requisição de cadastro de usuário
type RegisterRequest struct {
	Nome     string `json:"nome" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Senha    string `json:"senha" binding:"required,min=6,max=72"`
	Empresa  string `json:"empresa"`
	Telefone string `json:"telefone"`
	UserType string `json:"user_type" binding:"omitempty,oneof=admin cliente"`
}

// UpdateProfileRequest representa a edição de um perfil (substituição completa)
type UpdateProfileRequest struct {
	Nome     string `json:"nome" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Empresa  string `json:"empresa"`
	Telefone string `json:"telefone"`
	Status   string `json:"status"`
	UserType string `json:"user_type" binding:"required,oneof=admin cliente"`
}

// ChangePasswordRequest representa a troca de senha
type ChangePasswordRequest struct {
	UserID     string `json:"userId" binding:"required"`
	SenhaAtual string `json:"senhaAtual" binding:"required"`
	NovaSenha  string `json:"novaSenha" binding:"required,min=6,max=72"`
}

// ProfileResponse representa um perfil nas respostas da API.
// O hash de senha nunca sai da fronteira do repositório.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Empresa   string    `json:"empresa,omitempty"`
	Telefone  string    `json:"telefone,omitempty"`
	UserType  string    `json:"user_type"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToProfileResponse converte uma entidade Profile para ProfileResponse
func ToProfileResponse(profile *entities.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        profile.ID,
		Nome:      profile.Nome,
		Email:     profile.Email.String(),
		Empresa:   profile.Empresa,
		Telefone:  profile.Telefone,
		UserType:  string(profile.UserType),
		Status:    profile.Status,
		CreatedAt: profile.CreatedAt,
	}
}

// ToProfileResponses converte uma lista de entidades Profile
func ToProfileResponses(profiles []*entities.Profile) []ProfileResponse {
	responses := make([]ProfileResponse, len(profiles))
	for i, profile := range profiles {
		responses[i] = ToProfileResponse(profile)
	}
	return responses
}

// LoginResponse devolve o perfil autenticado e o token de sessão
type LoginResponse struct {
	User  ProfileResponse `json:"user"`
	Token string          `json:"token"`
}

// UserEnvelope embrulha um perfil no formato {user} da API original
type UserEnvelope struct {
	User ProfileResponse `json:"user"`
}

// UsuariosEnvelope embrulha a listagem no formato {usuarios}
type UsuariosEnvelope struct {
	Usuarios []ProfileResponse `json:"usuarios"`
}

// SuccessResponse é a resposta {success:true} de exclusão de perfil
type SuccessResponse struct {
	Success bool `json:"success"`
}
