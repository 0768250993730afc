package domain

type Master struct {
	ID             int64  `json:"id"`
	Name           string `json:"name" validate:"required"`
	Photo          string `json:"photo,omitempty"`
	Specialization string `json:"specialization"`
	Experience     int    `json:"experience" validate:"gt=0"`
	Bio            string `json:"bio,omitempty"`
	IsActive       bool   `json:"is_active"`

	// Services the master is able to perform.
	Services []Service `json:"services,omitempty"`
}

// Offers reports whether the master performs the service with the given id.
func (m *Master) Offers(serviceID int64) bool {
	for _, s := range m.Services {
		if s.ID == serviceID {
			return true
		}
	}
	return false
}
