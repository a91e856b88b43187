package pipeline

import "time"

// SetNow overrides the pipeline clock in tests.
func (p *Pipeline) SetNow(now func() time.Time) { p.now = now }

// SetRunIDGenerator overrides run id generation in tests.
func (p *Pipeline) SetRunIDGenerator(gen func() string) { p.newRunID = gen }
