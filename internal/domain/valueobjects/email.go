package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidEmail = errors.New("invalid email format")

// emailPattern cobre o formato aceito nos cadastros; unicidade e
// existência ficam a cargo da camada de persistência.
var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email é um value object que normaliza e valida endereços de email.
// O valor é sempre minúsculo e sem espaços nas bordas.
type Email struct {
	value string
}

// NewEmail cria um novo Email validado
func NewEmail(email string) (Email, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if len(email) < 3 || len(email) > 254 || !emailPattern.MatchString(email) {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: email}, nil
}

// String retorna o valor normalizado do email
func (e Email) String() string {
	return e.value
}
