package unbook_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("unbook_slot: time slot not found")

	// ErrNotOwner возвращается, когда бронь не принадлежит пользователю
	// Покрывает оба случая: слот свободен или забронирован другим пользователем
	ErrNotOwner = errors.New("unbook_slot: slot is not booked by this user")

	// ErrPastSlot возвращается при попытке снять бронь со слота в прошлом
	ErrPastSlot = errors.New("unbook_slot: cannot unbook a slot in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("unbook_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("unbook_slot: internal error")
)
