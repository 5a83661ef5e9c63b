package models

import "time"

type Assignment struct {
	ID          int64                 `json:"id" gorm:"primaryKey" validate:"required"`
	Title       string                `json:"title" gorm:"not null" validate:"required"`
	Description *string               `json:"description,omitempty"`
	ClassID     int64                 `json:"classId" gorm:"not null;index" validate:"required,gt=0"`
	CreatedBy   int64                 `json:"createdBy" gorm:"not null;index" validate:"required,gt=0"`
	FileID      *int64                `json:"fileId,omitempty" gorm:"index"`
	CreatedAt   time.Time             `json:"createdAt" gorm:"autoCreateTime"`
	File        *FileUpload           `json:"file,omitempty" gorm:"foreignKey:FileID"`
	AssignedTo  []*AssignmentAssigned `json:"assignedTo,omitempty" gorm:"foreignKey:AssignmentID"`
	Submissions []*Submission         `json:"submissions,omitempty" gorm:"foreignKey:AssignmentID"`
}

// AssignmentAssigned is the join record marking an assignment as assigned to a user.
type AssignmentAssigned struct {
	ID           int64     `json:"id" gorm:"primaryKey" validate:"required"`
	AssignmentID int64     `json:"assignmentId" gorm:"not null;index" validate:"required,gt=0"`
	UserID       int64     `json:"userId" gorm:"not null;index" validate:"required,gt=0"`
	AssignedAt   time.Time `json:"assignedAt" gorm:"autoCreateTime"`
}

type Submission struct {
	ID           int64     `json:"id" gorm:"primaryKey" validate:"required"`
	AssignmentID int64     `json:"assignmentId" gorm:"not null;index" validate:"required,gt=0"`
	UserID       int64     `json:"userId" gorm:"not null;index" validate:"required,gt=0"`
	FileName     string    `json:"fileName" gorm:"not null"`
	FilePath     string    `json:"filePath" gorm:"not null"`
	Grade        float64   `json:"grade" gorm:"default:0"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	User         *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
