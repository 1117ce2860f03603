package book_slot

// Request модель запроса на бронирование слота
type Request struct {
	SlotID int64 // ID слота
	UserID int64 // ID пользователя, запрашивающего бронь
}
