// Package order contains the Order aggregate and its supporting types:
// the status state machine, the commission snapshot logic, and the lifecycle
// events handed to the notification dispatcher.
package order
