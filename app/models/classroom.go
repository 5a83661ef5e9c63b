package models

import "time"

type ClassRoom struct {
	ID          int64          `json:"id" gorm:"primaryKey" validate:"required"`
	Name        string         `json:"name" gorm:"not null" validate:"required"`
	Description *string        `json:"description,omitempty"`
	CreatedBy   int64          `json:"createdBy" gorm:"not null;index" validate:"required,gt=0"`
	CreatedAt   time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	Creator     *User          `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	Members     []*ClassMember `json:"members,omitempty" gorm:"foreignKey:ClassID"`
}

type ClassMember struct {
	ID        int64     `json:"id" gorm:"primaryKey" validate:"required"`
	UserID    int64     `json:"userId" gorm:"not null;index" validate:"required,gt=0"`
	ClassID   int64     `json:"classId" gorm:"not null;index" validate:"required,gt=0"`
	Role      Role      `json:"role" gorm:"default:NORMAL"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
