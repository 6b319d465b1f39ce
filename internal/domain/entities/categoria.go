package entities

// Categoria é o rótulo de classificação de uma solicitação.
// Do ponto de vista da aplicação o catálogo é somente leitura.
type Categoria struct {
	ID   string
	Nome string
}
