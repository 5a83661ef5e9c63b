package models

import "time"

type FileUpload struct {
	ID        int64      `json:"id" gorm:"primaryKey" validate:"required"`
	FilePath  string     `json:"filePath" gorm:"not null"`
	FileType  string     `json:"fileType"`
	FileName  string     `json:"fileName" gorm:"not null"`
	UserID    int64      `json:"userId" gorm:"not null;index" validate:"required,gt=0"`
	ClassID   int64      `json:"classId" gorm:"not null;index" validate:"required,gt=0"`
	CreatedAt time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	Uploader  *User      `json:"uploader,omitempty" gorm:"foreignKey:UserID"`
	ClassRoom *ClassRoom `json:"classRoom,omitempty" gorm:"foreignKey:ClassID"`
	Comments  []*Comment `json:"comments,omitempty" gorm:"foreignKey:FileID"`
}

type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey" validate:"required"`
	Content   string    `json:"content" gorm:"not null" validate:"required"`
	FileID    int64     `json:"fileId" gorm:"not null;index" validate:"required,gt=0"`
	AuthorID  int64     `json:"authorId" gorm:"not null;index" validate:"required,gt=0"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	Author    *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}
