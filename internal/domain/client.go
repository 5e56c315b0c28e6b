package domain

// Client representa o tutor cadastrado no petshop.
// O CPF é único entre todos os clientes.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required"`
	CPF     string `json:"cpf" validate:"required"`
	Age     int    `json:"age" validate:"gte=0"`
	IsAdmin bool   `json:"is_admin"`
}

// ClientPatch carrega apenas os campos enviados numa atualização parcial.
// Campo nil significa "não informado" e preserva o valor atual.
type ClientPatch struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1"`
	CPF     *string `json:"cpf,omitempty" validate:"omitempty,min=1"`
	Age     *int    `json:"age,omitempty" validate:"omitempty,gte=0"`
	IsAdmin *bool   `json:"is_admin,omitempty"`
}

// IsEmpty informa se nenhum campo foi enviado.
func (p ClientPatch) IsEmpty() bool {
	return p.Name == nil && p.CPF == nil && p.Age == nil && p.IsAdmin == nil
}

// Apply devolve uma cópia do cliente com os campos presentes no patch.
func (p ClientPatch) Apply(c Client) Client {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.CPF != nil {
		c.CPF = *p.CPF
	}
	if p.Age != nil {
		c.Age = *p.Age
	}
	if p.IsAdmin != nil {
		c.IsAdmin = *p.IsAdmin
	}
	return c
}
