package domain

// Service é um item do catálogo (banho, tosa, consulta...).
// Schedules referenciam serviços pelo ID.
type Service struct {
	ID                string  `json:"id"`
	DurationInMinutes int     `json:"duration_in_minutes" validate:"gt=0"`
	TypeService       string  `json:"type_service" validate:"required"`
	Price             float64 `json:"price" validate:"gte=0"`
}

// ServicePatch é a atualização parcial de um serviço.
type ServicePatch struct {
	DurationInMinutes *int     `json:"duration_in_minutes,omitempty" validate:"omitempty,gt=0"`
	TypeService       *string  `json:"type_service,omitempty" validate:"omitempty,min=1"`
	Price             *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}

func (p ServicePatch) IsEmpty() bool {
	return p.DurationInMinutes == nil && p.TypeService == nil && p.Price == nil
}

func (p ServicePatch) Apply(s Service) Service {
	if p.DurationInMinutes != nil {
		s.DurationInMinutes = *p.DurationInMinutes
	}
	if p.TypeService != nil {
		s.TypeService = *p.TypeService
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	return s
}
