package registry

// RegistryError is a custom error type for registry-related errors
type RegistryError string

// Error implements the error interface
func (e RegistryError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound    RegistryError = "no active session with that code"
	ErrCodeSpaceExhausted RegistryError = "could not allocate a unique join code"
	ErrNilConfig          RegistryError = "config cannot be nil"
	ErrNilStore           RegistryError = "store cannot be nil"
	ErrNilGenerator       RegistryError = "code generator cannot be nil"
	ErrNilClock           RegistryError = "clock cannot be nil"
	ErrNilUUIDGenerator   RegistryError = "UUID generator cannot be nil"
)
