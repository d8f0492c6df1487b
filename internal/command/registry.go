package command

var registry = map[string]Command{}

// Register adds a command, applying middlewares outermost-first. Called
// from package init functions in the command subpackages.
func Register(cmd Command, middlewares ...Middleware) {
	for i := len(middlewares) - 1; i >= 0; i-- {
		cmd = middlewares[i](cmd)
	}
	registry[cmd.Name()] = cmd
}

func Get(name string) (Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

func All() []Command {
	var list []Command
	for _, cmd := range registry {
		list = append(list, cmd)
	}
	return list
}
