package domain

type ServiceCategory string

const (
	CategoryHair   ServiceCategory = "hair"
	CategoryNails  ServiceCategory = "nails"
	CategoryFace   ServiceCategory = "face"
	CategoryBody   ServiceCategory = "body"
	CategoryMakeup ServiceCategory = "makeup"
	CategoryOther  ServiceCategory = "other"
)

// Display returns the human-readable category label shown on the site.
func (c ServiceCategory) Display() string {
	switch c {
	case CategoryHair:
		return "Парикмахерские услуги"
	case CategoryNails:
		return "Маникюр и педикюр"
	case CategoryFace:
		return "Уход за лицом"
	case CategoryBody:
		return "Уход за телом"
	case CategoryMakeup:
		return "Макияж"
	default:
		return "Другое"
	}
}

type Service struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description,omitempty"`
	Price       float64         `json:"price" validate:"gte=0"`
	Duration    int             `json:"duration" validate:"gt=0"`
	Category    ServiceCategory `json:"category"`
	Image       string          `json:"image,omitempty"`
	IsActive    bool            `json:"is_active"`
}
