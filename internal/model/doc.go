// Package model holds the shared run types: the run core handed to every
// module handler, and the observable run state the dashboard renders.
package model
