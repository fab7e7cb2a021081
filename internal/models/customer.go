package models

// Customer is the in-memory shape of a cliente record. The server-held
// password never appears here; the service layer strips it on read.
type Customer struct {
	ID        int64   `json:"id"`
	Name      string  `json:"nome"`
	Email     string  `json:"email"`
	CPF       string  `json:"cpf"`
	Phone     *string `json:"telefone,omitempty"`
	BirthDate *string `json:"dataNascimento,omitempty"`
}

// CustomerDraft is the create-form state. Phone and BirthDate are optional;
// blank means "not provided".
type CustomerDraft struct {
	Name      string
	Email     string
	CPF       string
	Password  string
	Phone     string
	BirthDate string
}

// CustomerUpdate is the edit-form state. A nil field was never touched and is
// omitted from the payload. Phone and BirthDate set to "" clear the stored
// value; a blank Password keeps the existing credential.
type CustomerUpdate struct {
	Name      *string
	Email     *string
	CPF       *string
	Phone     *string
	BirthDate *string
	Password  *string
}

// LoginRequest is the POST /clientes/login body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required,min=4,contemletra,contemnumero"`
}
