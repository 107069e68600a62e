// Package status records client heartbeat checks against the API.
package status

import "time"

// Check is a single status check submitted by a client.
type Check struct {
	ID         string    `json:"id"`
	ClientName string    `json:"clientName"`
	Timestamp  time.Time `json:"timestamp"`
}
