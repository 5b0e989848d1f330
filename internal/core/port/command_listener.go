package port

import "context"

// CommandListenerPort - входящий адаптер, который слушает команды
// пользователей (подписка и т.п.) и вызывает ядро.
type CommandListenerPort interface {
	// Start блокируется до отмены контекста или фатальной ошибки.
	Start(ctx context.Context) error

	Close() error
}
