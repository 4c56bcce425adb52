package errs

import "errors"

// Виды ошибок ядра чата. Usecase оборачивают их через %w, транспорт проверяет errors.Is.
var (
	ErrRateLimited    = errors.New("rate limited")
	ErrInvalidRequest = errors.New("invalid request")
	ErrForbidden      = errors.New("forbidden")
	ErrNoSuchUser     = errors.New("no such user")
	ErrRoomFull       = errors.New("room full")
	ErrNotFound       = errors.New("not found")
)
