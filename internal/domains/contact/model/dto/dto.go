package dto

type ContactLinksResponse struct {
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
}

type LocationResponse struct {
	// Embed is a maps iframe URL, present only when a maps API key is
	// configured.
	Embed string `json:"embed,omitempty"`
	// Open is a plain maps search link that always works.
	Open string `json:"open"`
}
