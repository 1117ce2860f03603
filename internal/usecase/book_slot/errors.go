package book_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("book_slot: time slot not found")

	// ErrAlreadyBooked возвращается, когда слот уже забронирован
	ErrAlreadyBooked = errors.New("book_slot: slot already booked")

	// ErrPastSlot возвращается при попытке забронировать слот в прошлом
	ErrPastSlot = errors.New("book_slot: cannot book a slot in the past")

	// ErrConflictingBooking возвращается, когда у пользователя уже есть бронь,
	// пересекающаяся по времени с целевым слотом
	ErrConflictingBooking = errors.New("book_slot: conflicting booking exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_slot: internal error")
)
