package models

import "time"

type User struct {
	ID        int64     `json:"id" gorm:"primaryKey" validate:"required"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	Password  string    `json:"-" gorm:"not null" validate:"required,min=6"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
