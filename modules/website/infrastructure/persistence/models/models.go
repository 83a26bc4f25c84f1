package models

import (
	"time"
)

type Slide struct {
	ID       int    `json:"id"`
	Image    string `json:"image"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTAText  string `json:"ctaText,omitempty"`
	CTALink  string `json:"ctaLink,omitempty"`
}

type Photo struct {
	ID          int    `json:"id"`
	Image       string `json:"image"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Stat struct {
	ID          int    `json:"id"`
	Icon        string `json:"icon"`
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type Value struct {
	ID          int    `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ContactInfo struct {
	Organization string   `json:"organization"`
	Address      []string `json:"address"`
	Phones       []string `json:"phones"`
	Emails       []string `json:"emails"`
	Hours        []string `json:"hours"`
	MapURL       string   `json:"mapUrl,omitempty"`
}

type Post struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Image    string `json:"image"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Category string `json:"category"`
	ReadTime string `json:"readTime"`
}

type ContactMessage struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Subject   string    `db:"subject"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}
