package commands

import (
	"sort"
	"strings"
)

// Kind identifies one of the fixed rover operations
type Kind int

const (
	KindMove Kind = iota
	KindTurnLeft
	KindTurnRight
)

func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindTurnLeft:
		return "left"
	case KindTurnRight:
		return "right"
	default:
		return "unknown"
	}
}

// Definition describes a command token accepted in a command script
type Definition struct {
	Name        string
	Short       string
	Description string
	Kind        Kind
}

// CommandRegistry maps script tokens to command kinds
type CommandRegistry struct {
	definitions map[string]Definition
	byToken     map[string]Definition
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		definitions: make(map[string]Definition),
		byToken:     make(map[string]Definition),
	}
}

// Register adds a definition under its name and short form
func (reg *CommandRegistry) Register(def Definition) {
	reg.definitions[def.Name] = def
	reg.byToken[strings.ToLower(def.Name)] = def
	if def.Short != "" {
		reg.byToken[strings.ToLower(def.Short)] = def
	}
}

// Get returns a definition by name or short form, case-insensitive
func (reg *CommandRegistry) Get(token string) (Definition, bool) {
	def, exists := reg.byToken[strings.ToLower(strings.TrimSpace(token))]
	return def, exists
}

// List returns all registered command names in sorted order
func (reg *CommandRegistry) List() []string {
	names := make([]string, 0, len(reg.definitions))
	for name := range reg.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CommandError represents a command-specific error
type CommandError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *CommandError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// Common error codes
const (
	ErrInvalidParams = "INVALID_PARAMS"
	ErrNotSupported  = "NOT_SUPPORTED"
)
