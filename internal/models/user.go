package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string `json:"name" example:"Jane"`
	Email    string `gorm:"unique" json:"email" example:"jane@example.com"`
	Password string `json:"password,omitempty"`
}
