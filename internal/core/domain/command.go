package domain

// Command is an external process invocation.
type Command struct {
	// Args holds the executable followed by its arguments.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Env holds variables set on top of the process environment.
	Env map[string]string
}
