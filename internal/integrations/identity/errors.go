package identity

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден в IdentityService
	ErrUserNotFound = errors.New("user not found in identity service")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("identity client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что IdentityService недоступен и следует работать без
	// сверки email (доступ в админку в этом режиме не выдается)
	ErrServiceDegraded = errors.New("identity service unavailable: graceful degradation applied")
)
