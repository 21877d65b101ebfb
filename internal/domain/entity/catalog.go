package entity

// Category and City are reference tables resolved at event creation.

type Category struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null;unique"`
}

type City struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null;unique"`
}
