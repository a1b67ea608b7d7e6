package repository

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Workouts     []Workout `gorm:"constraint:OnDelete:CASCADE"` // only used to declare the foreign key
}

type Workout struct {
	ID               uint           `gorm:"primaryKey"`
	UserID           uint           `gorm:"not null;index"`
	ExerciseID       string         `gorm:"type:text;not null"`
	ExerciseName     string         `gorm:"type:text;not null"`
	SetsData         datatypes.JSON `gorm:"type:jsonb;not null"`
	WorkoutTimestamp string         `gorm:"type:text"` // kept verbatim, ordered as text
	CreatedAt        time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
}
