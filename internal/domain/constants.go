package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DaysInWeek размер недельного окна фильтрации слотов
const DaysInWeek = 7

// Business validation constants
const (
	MaxUsernameLength  = 150
	MaxNameLength      = 150
	MinPasswordLength  = 8
	MaxCategoryNameLen = 100
)
