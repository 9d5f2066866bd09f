// Package app wires the substrate together: logger, configuration loading,
// registry store, module catalog, hot-reload loader, optional config watcher
// and healthcheck server, and the flow engine itself.
//
// Construction is explicit dependency injection: NewApp receives the config
// loader and the module set, so tests can substitute in-memory models and
// fake modules. The only fatal error in the whole system is failing to
// obtain an initial valid configuration at startup; NewApp panics in that
// case and main recovers for a clean exit message.
package app
