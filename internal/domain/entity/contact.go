package entity

import "github.com/paulmach/orb/geojson"

// ContactInfo backs the contact page.
type ContactInfo struct {
	Email    string            `json:"email"`
	Socials  map[string]string `json:"socials,omitempty"`
	Location *geojson.Feature  `json:"location,omitempty"`
}

// ContactMessage is a visitor's submission from the contact form.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
