package extract

import "context"

// Extractor turns a natural language task description into a validated
// TaskRecord via an external text-generation service.
type Extractor interface {
	Extract(ctx context.Context, text string) (*TaskRecord, error)
}
