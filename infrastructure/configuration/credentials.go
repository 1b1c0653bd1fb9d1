package configuration

import (
	"os"
	"strings"

	"trending-board/domain/apperrors"
	"trending-board/infrastructure/logger"

	"github.com/spf13/viper"
)

// Provider is a single source of named configuration values. Providers are
// consulted in order; the first hit wins. Passing the chain explicitly keeps
// the resolution order visible at the call site instead of hiding it in
// package globals.
type Provider interface {
	Lookup(key string) (string, bool)
	Name() string
}

// SecretsFileProvider reads values from a TOML secrets file (secrets.toml by
// default). A missing or unreadable file yields no values rather than an
// error, mirroring how deployments without a secrets mount behave.
type SecretsFileProvider struct {
	v    *viper.Viper
	path string
}

// NewSecretsFileProvider loads the secrets file once at construction.
func NewSecretsFileProvider(path string) *SecretsFileProvider {
	if path == "" {
		path = "secrets.toml"
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			logger.GetLogger().WithField("error", err).Debug("Secrets file not readable")
		}
		v = nil
	}
	return &SecretsFileProvider{v: v, path: path}
}

func (p *SecretsFileProvider) Name() string { return "secrets:" + p.path }

func (p *SecretsFileProvider) Lookup(key string) (string, bool) {
	if p.v == nil {
		return "", false
	}
	// Flat key first, then a nested youtube.api_key style fallback.
	if val := strings.TrimSpace(p.v.GetString(key)); val != "" {
		return val, true
	}
	nested := strings.ReplaceAll(strings.ToLower(key), "youtube_", "youtube.")
	if val := strings.TrimSpace(p.v.GetString(nested)); val != "" {
		return val, true
	}
	return "", false
}

// EnvProvider reads from the process environment.
type EnvProvider struct{}

func (EnvProvider) Name() string { return "env" }

func (EnvProvider) Lookup(key string) (string, bool) {
	val := strings.TrimSpace(os.Getenv(key))
	return val, val != ""
}

// CredentialResolver resolves credentials through an ordered provider chain.
type CredentialResolver struct {
	providers []Provider
}

// NewCredentialResolver builds a resolver over the given providers, consulted
// in the order passed.
func NewCredentialResolver(providers ...Provider) *CredentialResolver {
	return &CredentialResolver{providers: providers}
}

// DefaultCredentialResolver is the production chain: secrets file first, then
// process environment.
func DefaultCredentialResolver() *CredentialResolver {
	return NewCredentialResolver(NewSecretsFileProvider(""), EnvProvider{})
}

func (r *CredentialResolver) lookup(key string) (string, bool) {
	for _, p := range r.providers {
		if val, ok := p.Lookup(key); ok {
			logger.GetLogger().WithField("provider", p.Name()).Debug("Credential resolved")
			return val, true
		}
	}
	return "", false
}

// APIKey returns the platform API key. Absence is terminal for the session.
func (r *CredentialResolver) APIKey() (string, error) {
	if val, ok := r.lookup("YOUTUBE_API_KEY"); ok {
		return val, nil
	}
	return "", &apperrors.ConfigurationError{
		Reason: "YOUTUBE_API_KEY is not set; provide it via secrets.toml or environment",
	}
}

// TempCredentials returns the placeholder login pair. Both values empty means
// the login gate is not configured; the caller decides how to degrade.
func (r *CredentialResolver) TempCredentials() (username, password string) {
	username, _ = r.lookup("TEMP_USERNAME")
	password, _ = r.lookup("TEMP_PASSWORD")
	return username, password
}
