package domain

// Pet pertence a exatamente um cliente (referência por ClientID).
// O nome do pet é único em todo o sistema.
type Pet struct {
	ID                string `json:"id"`
	ClientID          string `json:"client_id"`
	Name              string `json:"name" validate:"required"`
	Breed             string `json:"breed"`
	Age               int    `json:"age" validate:"gte=0"`
	SizeInCentimeters int    `json:"size_in_centimeters" validate:"gte=0"`
}

// PetPatch é a atualização parcial de um pet. O dono não pode ser trocado.
type PetPatch struct {
	Name              *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Breed             *string `json:"breed,omitempty"`
	Age               *int    `json:"age,omitempty" validate:"omitempty,gte=0"`
	SizeInCentimeters *int    `json:"size_in_centimeters,omitempty" validate:"omitempty,gte=0"`
}

func (p PetPatch) IsEmpty() bool {
	return p.Name == nil && p.Breed == nil && p.Age == nil && p.SizeInCentimeters == nil
}

func (p PetPatch) Apply(pet Pet) Pet {
	if p.Name != nil {
		pet.Name = *p.Name
	}
	if p.Breed != nil {
		pet.Breed = *p.Breed
	}
	if p.Age != nil {
		pet.Age = *p.Age
	}
	if p.SizeInCentimeters != nil {
		pet.SizeInCentimeters = *p.SizeInCentimeters
	}
	return pet
}

// PetFilter define a busca de pets por trecho do nome (sem diferenciar maiúsculas).
// ClientID é opcional e restringe a busca aos pets de um cliente.
type PetFilter struct {
	Name     string
	ClientID string
	Page     Page
}
