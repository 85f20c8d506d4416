package models

import "time"

// ContactMessage, vitrin iletişim formundan gelen mesajdır.
type ContactMessage struct {
	StoreSlug string    `json:"store_slug"`
	StoreName string    `json:"store_name"`
	Name      string    `json:"name" form:"name" binding:"required"`
	Email     string    `json:"email" form:"email" binding:"required,email"`
	Subject   string    `json:"subject" form:"subject"`
	Message   string    `json:"message" form:"message" binding:"required"`
	IP        string    `json:"ip"`
	CreatedAt time.Time `json:"created_at"`
}
