package signup

import "slices"

// Field names. They are also the datastar signal names and form keys.
const (
	FieldFullName    = "fullName"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldPhoneNumber = "phoneNumber"
	FieldBirthDate   = "birthDate"
	FieldAddress     = "address"
)

// Input types of the rendered controls.
const (
	InputText     = "text"
	InputEmail    = "email"
	InputPassword = "password"
	InputTel      = "tel"
	InputDate     = "date"
	InputTextarea = "textarea"
)

// Field describes how a form field is rendered.
type Field struct {
	Name         string
	InputType    string
	Autocomplete string
	// Sensitive values are never echoed back into rendered HTML.
	Sensitive bool
}

// Fields lists the form fields in display order.
var Fields = []Field{
	{Name: FieldFullName, InputType: InputText, Autocomplete: "name"},
	{Name: FieldEmail, InputType: InputEmail, Autocomplete: "email"},
	{Name: FieldPassword, InputType: InputPassword, Autocomplete: "new-password", Sensitive: true},
	{Name: FieldPhoneNumber, InputType: InputTel, Autocomplete: "tel"},
	{Name: FieldBirthDate, InputType: InputDate, Autocomplete: "bday"},
	{Name: FieldAddress, InputType: InputTextarea, Autocomplete: "street-address"},
}

// FieldNames returns the field names in display order.
func FieldNames() []string {
	names := make([]string, len(Fields))
	for i, f := range Fields {
		names[i] = f.Name
	}
	return names
}

// IsField reports whether name is one of the form fields.
func IsField(name string) bool {
	return slices.ContainsFunc(Fields, func(f Field) bool { return f.Name == name })
}

// Values are the submitted form values. BirthDate keeps the raw YYYY-MM-DD input.
type Values struct {
	FullName    string `json:"fullName" form:"fullName"`
	Email       string `json:"email" form:"email"`
	Password    string `json:"password" form:"password"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber"`
	BirthDate   string `json:"birthDate" form:"birthDate"`
	Address     string `json:"address" form:"address"`
}

// Get returns the value of field.
func (v Values) Get(field string) (string, bool) {
	switch field {
	case FieldFullName:
		return v.FullName, true
	case FieldEmail:
		return v.Email, true
	case FieldPassword:
		return v.Password, true
	case FieldPhoneNumber:
		return v.PhoneNumber, true
	case FieldBirthDate:
		return v.BirthDate, true
	case FieldAddress:
		return v.Address, true
	}
	return "", false
}

// Set assigns value to field and reports whether field exists.
func (v *Values) Set(field, value string) bool {
	switch field {
	case FieldFullName:
		v.FullName = value
	case FieldEmail:
		v.Email = value
	case FieldPassword:
		v.Password = value
	case FieldPhoneNumber:
		v.PhoneNumber = value
	case FieldBirthDate:
		v.BirthDate = value
	case FieldAddress:
		v.Address = value
	default:
		return false
	}
	return true
}
