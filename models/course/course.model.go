package course

import "gorm.io/gorm"

// Course represents a learning course owned by an instructor
type Course struct {
	gorm.Model
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	InstructorID  uint    `json:"instructor_id" gorm:"index;not null"`
	Price         float64 `json:"price" gorm:"default:0"`
	Capacity      int     `json:"capacity" gorm:"default:0"` // 0 = unlimited seats
	EnrolledCount int     `json:"enrolled_count" gorm:"default:0"`
	ThumbnailURL  string  `json:"thumbnail_url"`
	IsPublished   bool    `json:"is_published" gorm:"default:false"`
	DripEnabled   bool    `json:"drip_enabled" gorm:"default:false"`
	IsDeleted     bool    `gorm:"default:false"`
}
