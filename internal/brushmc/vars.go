package brushmc

var (
	Debug = false // set to true for verbose debug output

	// Compile time check that the default CPU backend satisfies the dispatch interface
	_ Dispatcher = (*cpuDispatcher)(nil)
)
