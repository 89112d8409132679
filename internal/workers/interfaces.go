// Package workers runs background loops for the terminal client, such as
// the periodic analytics refresh.
package workers

import "context"

// Worker runs until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
