package db

import (
	"github.com/jackc/pgx/v5"

	"github.com/gyeh/eircode/internal/model"
)

// ChannelSource implements pgx.CopyFromSource over a channel of address
// records, so the Parquet reader and the COPY writer apply backpressure to
// each other.
type ChannelSource struct {
	ch      <-chan *model.AddressRecord
	current *model.AddressRecord
}

// NewChannelSource creates a CopyFromSource backed by a channel.
func NewChannelSource(ch <-chan *model.AddressRecord) *ChannelSource {
	return &ChannelSource{ch: ch}
}

// Next advances to the next record. Returns false when the channel is closed.
func (s *ChannelSource) Next() bool {
	rec, ok := <-s.ch
	if !ok {
		return false
	}
	s.current = rec
	return true
}

// Values returns the current record in model.AddressColumns order.
func (s *ChannelSource) Values() ([]any, error) {
	return s.current.CopyValues(), nil
}

// Err always returns nil; producer errors are reported out of band.
func (s *ChannelSource) Err() error {
	return nil
}

var _ pgx.CopyFromSource = (*ChannelSource)(nil)
