package domain

// Contact holds the salon's contact block. The table may hold several rows
// but read endpoints only ever use the first one.
type Contact struct {
	ID            int64  `json:"id"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	WorkingHours  string `json:"working_hours"`
	MapEmbed      string `json:"map_embed,omitempty"`
	VKLink        string `json:"vk_link,omitempty"`
	InstagramLink string `json:"instagram_link,omitempty"`
	TelegramLink  string `json:"telegram_link,omitempty"`
}

// SalonInfo holds the landing-page content. First-record convention, same
// as Contact.
type SalonInfo struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Tagline   string `json:"tagline,omitempty"`
	AboutText string `json:"about_text"`
	HeroImage string `json:"hero_image,omitempty"`
}
