package service

// ServiceConfig carries the settings the services need beyond their
// injected collaborators.
type ServiceConfig struct {
	// SecretSalt keys the password hash; rotating it invalidates every
	// stored digest.
	SecretSalt string
	// RegisterIsEnable toggles signup.
	RegisterIsEnable bool
}
