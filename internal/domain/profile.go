package domain

// UserProfile профиль пользователя с набором интересующих категорий
// Профиль создается явным хуком при регистрации пользователя, но потребители
// не должны полагаться на его существование и обязаны делать get-or-create
type UserProfile struct {
	ID     int64
	UserID int64

	// InterestedCategories выбранные пользователем категории
	InterestedCategories []Category
}

// CategoryIDs возвращает идентификаторы интересующих категорий
func (p *UserProfile) CategoryIDs() []int64 {
	ids := make([]int64, len(p.InterestedCategories))
	for i, c := range p.InterestedCategories {
		ids[i] = c.ID
	}
	return ids
}
