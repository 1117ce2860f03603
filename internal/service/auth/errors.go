package auth

import "errors"

var (
	// ErrUsernameTaken возвращается, когда имя пользователя уже занято
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials возвращается при неверном имени пользователя
	// или пароле, без уточнения, что именно не совпало
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth service: internal error")
)
