package commands

import "github.com/rs/zerolog"

// Invoker queues commands and runs them in insertion order
type Invoker struct {
	queue  []Command
	logger zerolog.Logger
}

// NewInvoker creates an empty invoker
func NewInvoker(logger zerolog.Logger) *Invoker {
	return &Invoker{logger: logger}
}

// SetCommand appends cmd to the tail of the queue
func (i *Invoker) SetCommand(cmd Command) {
	i.queue = append(i.queue, cmd)
}

// Len returns the number of queued commands
func (i *Invoker) Len() int {
	return len(i.queue)
}

// ExecuteCommands runs every queued command from head to tail. A blocked move
// does not stop the run. The queue is kept, so calling it again replays the
// commands against the rovers' current state.
func (i *Invoker) ExecuteCommands() {
	for idx, cmd := range i.queue {
		i.logger.Trace().Int("index", idx).Str("command", cmd.String()).Msg("executing command")
		cmd.Execute()
	}
	i.logger.Debug().Int("count", len(i.queue)).Msg("command queue executed")
}
