package signup

// Config holds the form limits. Zero values fall back to the defaults.
type Config struct {
	// BasePath is where the module is mounted; views post back to it.
	BasePath   string `env:"SIGNUP_BASE_PATH" envDefault:"/signup"`
	MinAge     int    `env:"SIGNUP_MIN_AGE" envDefault:"18"`
	AddressMin int    `env:"SIGNUP_ADDRESS_MIN" envDefault:"10"`
	AddressMax int    `env:"SIGNUP_ADDRESS_MAX" envDefault:"500"`
	// ValidateDebounce is the datastar debounce applied to live validation on input.
	ValidateDebounce string `env:"SIGNUP_VALIDATE_DEBOUNCE" envDefault:"300ms"`
}

const (
	DefaultBasePath   = "/signup"
	DefaultMinAge     = 18
	DefaultAddressMin = 10
	DefaultAddressMax = 500
	DefaultDebounce   = "300ms"
)

func (c Config) withDefaults() Config {
	if c.BasePath == "" {
		c.BasePath = DefaultBasePath
	}
	if c.MinAge <= 0 {
		c.MinAge = DefaultMinAge
	}
	if c.AddressMin <= 0 {
		c.AddressMin = DefaultAddressMin
	}
	if c.AddressMax <= 0 {
		c.AddressMax = DefaultAddressMax
	}
	if c.ValidateDebounce == "" {
		c.ValidateDebounce = DefaultDebounce
	}
	return c
}
