package internal

import (
	"os"
	"strings"
)

// CredentialResolver produces the API key for backend calls. A user-supplied
// override stored in the key-value store strictly wins over the process-wide
// default taken from the environment.
type CredentialResolver struct {
	store  *Store
	envVar string
}

// NewCredentialResolver creates a resolver reading the override from store
// and the default from the envVar environment variable.
func NewCredentialResolver(store *Store, envVar string) *CredentialResolver {
	return &CredentialResolver{store: store, envVar: envVar}
}

// Resolve returns the API key to use, or ErrMissingCredential when neither
// an override nor a default is configured.
func (c *CredentialResolver) Resolve() (string, error) {
	override, ok, err := c.store.Get(CredentialKey)
	if err != nil {
		return "", err
	}
	if ok && strings.TrimSpace(override) != "" {
		return strings.TrimSpace(override), nil
	}

	if key := strings.TrimSpace(os.Getenv(c.envVar)); key != "" {
		return key, nil
	}

	return "", ErrMissingCredential
}

// Override returns the stored user override, if any
func (c *CredentialResolver) Override() (string, bool, error) {
	value, ok, err := c.store.Get(CredentialKey)
	if err != nil {
		return "", false, err
	}
	value = strings.TrimSpace(value)
	return value, ok && value != "", nil
}

// SetOverride stores a user override; an empty key removes the override
func (c *CredentialResolver) SetOverride(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return c.store.Delete(CredentialKey)
	}
	return c.store.Set(CredentialKey, key)
}
