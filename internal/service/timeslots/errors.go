package timeslots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("time slot not found")

	// ErrCategoryNotFound возвращается, когда указанная категория не существует
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidTimeRange возвращается, когда start_time не раньше end_time
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("timeslots service: internal error")
)
