// Package app contains the core application lifecycle. It defines the main
// App struct, its configuration, logger construction, and the run loop that
// resolves word sources, fans generations out to the runner, and reports
// the aggregate outcome. It is decoupled from any specific entrypoint.
package app
