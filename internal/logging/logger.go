// Package logging описывает структурный логгер, которым пользуются все слои сервиса.
package logging

import "context"

// Logger — структурный логгер с контекстом.
//
// Variadic-аргументы трактуются как пары ключ–значение:
//
//	log.Info(ctx, "item created", "id", id)
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With возвращает дочерний логгер, всегда добавляющий переданные пары.
	With(args ...any) Logger
}
