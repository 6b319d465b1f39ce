package ports

// EventPublisher publica eventos de domínio para observadores conectados
// (hoje, o hub de WebSocket que alimenta o dashboard).
type EventPublisher interface {
	Publish(event any)
}
