package preferences

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCategory возвращается, когда список предпочтений ссылается
	// на несуществующую категорию
	// В отличие от фильтрации слотов, где мусорные значения молча
	// отбрасываются, здесь неизвестные идентификаторы - ошибка валидации
	ErrInvalidCategory = errors.New("invalid category reference")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("preferences service: internal error")
)
