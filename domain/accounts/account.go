package accounts

// Address is a postal address attached to a profile. Extra fields beyond
// these are carried through untouched in Profile.Custom.
type Address struct {
	Name        string `json:"name,omitempty"`
	Street      string `json:"street,omitempty"`
	HouseNumber string `json:"houseNumber,omitempty"`
	City        string `json:"city,omitempty"`
	ZipCode     string `json:"zip_code,omitempty"`
}

// Profile holds the schema-flexible extra fields stored alongside an
// account in the user catalogue.
type Profile struct {
	Email         string         `json:"email,omitempty" validate:"omitempty,email"`
	FullName      string         `json:"fullName,omitempty"`
	Address       *Address       `json:"address,omitempty"`
	Birthday      string         `json:"birthday,omitempty"`
	Organisations []string       `json:"organisations,omitempty"`
	Custom        map[string]any `json:"-"`
}

// Account is a registered identity. The username doubles as the name of
// the account's tenant database.
type Account struct {
	Username  string  `json:"username"`
	Active    bool    `json:"is_active"`
	Superuser bool    `json:"is_superuser"`
	Profile   Profile `json:"extra"`
}

// DatabaseName returns the name of the account's tenant database.
func (a Account) DatabaseName() string {
	return a.Username
}
