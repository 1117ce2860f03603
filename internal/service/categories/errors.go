package categories

import "errors"

var (
	// ErrCategoryNotFound возвращается, когда категория не найдена
	ErrCategoryNotFound = errors.New("category not found")

	// ErrDuplicateName возвращается при попытке создать категорию с занятым именем
	ErrDuplicateName = errors.New("category name already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("categories service: internal error")
)
