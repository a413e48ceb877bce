package logbridge

import (
	"errors"
	"regexp"
)

// DefaultNamespace is used when no explicit namespace is provided.
const DefaultNamespace = "logbridge"

var (
	// ErrNamespaceInvalid is returned when the namespace contains characters the host cannot route.
	ErrNamespaceInvalid = errors.New("namespace is invalid")

	isNamespaceValid = regexp.MustCompile(`^[a-zA-Z0-9_.:-]+$`)
)

// HostCall defines the waPC host function signature used for outbound requests.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Config provides configuration options for SDK initialization.
type Config struct {
	// Namespace controls the namespace used for host callbacks.
	// If empty, DefaultNamespace is used.
	Namespace string
}

// RuntimeConfig carries configuration that is used during creation of SDK components.
type RuntimeConfig struct {
	// Namespace is the namespace used to scope host interactions.
	Namespace string
}

// SDK represents the initialized runtime.
type SDK struct {
	// runtime holds the current runtime configuration snapshot.
	runtime RuntimeConfig
}

// New resolves the runtime configuration shared by the logging and console clients.
func New(config Config) (*SDK, error) {
	// Create runtime configuration with defaults
	cfg := RuntimeConfig{Namespace: DefaultNamespace}

	// Override defaults with provided configuration
	if config.Namespace != "" {
		if !isNamespaceValid.MatchString(config.Namespace) {
			return nil, ErrNamespaceInvalid
		}
		cfg.Namespace = config.Namespace
	}

	return &SDK{runtime: cfg}, nil
}

// Config returns the current runtime configuration snapshot.
func (s *SDK) Config() RuntimeConfig { return s.runtime }
