// Package remote provides remote translation service clients.
package remote

import "github.com/ZaguanLabs/locfetch"

// Fetcher is the interface for remote translation backends.
// This is an alias to the main package interface for convenience.
type Fetcher = locfetch.Fetcher
