package customer

type CustomerReq struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required,numeric,min=10,max=11"`
	CPF      string `json:"cpf" validate:"required,numeric,min=11"`
	Birthday string `json:"birthday" validate:"required,datetime=2006-01-02"`
}
