package model

type Category struct {
	ID          uint   `gorm:"primarykey" json:"-"`
	Name        string `json:"name" gorm:"not null;uniqueIndex"`
	Description string `json:"description" gorm:"type:text;not null"`
}

func (Category) TableName() string { return "categories" }
