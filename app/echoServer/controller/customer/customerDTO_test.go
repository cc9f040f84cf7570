package customer

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestCustomerReq_CPFLength(t *testing.T) {
	v := validator.New()

	base := CustomerReq{
		Name:     "Joao",
		Phone:    "21998899222",
		Birthday: "1992-10-05",
	}

	cases := []struct {
		name string
		cpf  string
		ok   bool
	}{
		{"ten digits rejected", "0123456789", false},
		{"eleven digits accepted", "01234567890", true},
		// identifiers longer than 11 digits are valid input and must be
		// storable, not surface as a storage failure
		{"twelve digits accepted", "012345678901", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := base
			req.CPF = tc.cpf
			err := v.Struct(req)
			if tc.ok && err != nil {
				t.Fatalf("cpf %q: unexpected validation error: %v", tc.cpf, err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("cpf %q: expected validation error", tc.cpf)
			}
		})
	}
}

func TestCustomerReq_PhoneLength(t *testing.T) {
	v := validator.New()

	base := CustomerReq{
		Name:     "Joao",
		CPF:      "01234567890",
		Birthday: "1992-10-05",
	}

	for _, phone := range []string{"219988992", "219988992221"} {
		req := base
		req.Phone = phone
		if err := v.Struct(req); err == nil {
			t.Fatalf("phone %q: expected validation error", phone)
		}
	}
	req := base
	req.Phone = "2199889922"
	if err := v.Struct(req); err != nil {
		t.Fatalf("phone %q: unexpected validation error: %v", req.Phone, err)
	}
}
