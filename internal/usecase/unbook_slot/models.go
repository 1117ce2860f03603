package unbook_slot

// Request модель запроса на снятие брони со слота
type Request struct {
	SlotID int64 // ID слота
	UserID int64 // ID пользователя, запрашивающего снятие брони
}
