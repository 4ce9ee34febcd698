// Package source moves decoded terminal events from the polling goroutine
// to the editor loop.
//
// A Source polls the backend at a fixed interval and pushes every event
// into a Queue. The editor loop drains the queue with TryPop and never
// blocks on it. Closing the queue is how the consumer tells the producer
// to stop.
package source
