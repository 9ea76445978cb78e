package commands

import (
	"fmt"
	"strings"

	"github.com/rover-sim/internal/rover"
)

// Command is one queued rover operation bound to its target rover.
// The set of kinds is closed, so Execute dispatches with a switch.
type Command struct {
	kind  Kind
	rover *rover.Rover
}

// New binds a command of the given kind to r
func New(kind Kind, r *rover.Rover) Command {
	return Command{kind: kind, rover: r}
}

// NewMove creates a move-forward command
func NewMove(r *rover.Rover) Command {
	return New(KindMove, r)
}

// NewTurnLeft creates a turn-left command
func NewTurnLeft(r *rover.Rover) Command {
	return New(KindTurnLeft, r)
}

// NewTurnRight creates a turn-right command
func NewTurnRight(r *rover.Rover) Command {
	return New(KindTurnRight, r)
}

// Kind returns the command kind
func (c Command) Kind() Kind {
	return c.kind
}

// Rover returns the target rover
func (c Command) Rover() *rover.Rover {
	return c.rover
}

// Execute applies the operation to the target rover once
func (c Command) Execute() {
	switch c.kind {
	case KindMove:
		c.rover.Move()
	case KindTurnLeft:
		c.rover.TurnLeft()
	case KindTurnRight:
		c.rover.TurnRight()
	}
}

func (c Command) String() string {
	return c.kind.String()
}

// RegisterCoreCommands registers the move, left and right commands
func RegisterCoreCommands(registry *CommandRegistry) {
	registry.Register(Definition{
		Name:        "move",
		Short:       "M",
		Description: "Move one cell forward along the current heading",
		Kind:        KindMove,
	})
	registry.Register(Definition{
		Name:        "left",
		Short:       "L",
		Description: "Turn a quarter turn counter-clockwise",
		Kind:        KindTurnLeft,
	})
	registry.Register(Definition{
		Name:        "right",
		Short:       "R",
		Description: "Turn a quarter turn clockwise",
		Kind:        KindTurnRight,
	})
}

// DefaultRegistry returns a registry holding the core commands
func DefaultRegistry() *CommandRegistry {
	registry := NewCommandRegistry()
	RegisterCoreCommands(registry)
	return registry
}

// Parse turns script tokens into commands bound to r. A token is either a
// registered name or short form, or a run of short forms such as "MRMLM".
func (reg *CommandRegistry) Parse(tokens []string, r *rover.Rover) ([]Command, error) {
	cmds := make([]Command, 0, len(tokens))
	for i, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if def, ok := reg.Get(token); ok {
			cmds = append(cmds, New(def.Kind, r))
			continue
		}

		expanded, err := reg.expandShort(token, r)
		if err != nil {
			return nil, &CommandError{
				Code:    ErrInvalidParams,
				Message: "unknown command",
				Details: fmt.Sprintf("token %d %q: %v", i, token, err),
			}
		}
		cmds = append(cmds, expanded...)
	}
	return cmds, nil
}

func (reg *CommandRegistry) expandShort(token string, r *rover.Rover) ([]Command, error) {
	cmds := make([]Command, 0, len(token))
	for _, ch := range token {
		def, ok := reg.Get(string(ch))
		if !ok || !strings.EqualFold(def.Short, string(ch)) {
			return nil, fmt.Errorf("unrecognised %q, expected one of %v", ch, reg.List())
		}
		cmds = append(cmds, New(def.Kind, r))
	}
	return cmds, nil
}

// Validate reports the first token that Parse would reject
func (reg *CommandRegistry) Validate(tokens []string) error {
	_, err := reg.Parse(tokens, nil)
	return err
}
