package model

import "github.com/google/uuid"

// AddressRecord is the normalized, DB-ready representation of one address row.
type AddressRecord struct {
	LoadBatchID  uuid.UUID
	SourceFileID int64

	SourceRowNumber int64
	SourceRowHash   []byte

	AddressID *string
	Address   *string

	// RawEircode is the trimmed input value; Eircode is the "RRR UUUU" form.
	RawEircode string
	Eircode    string
	RoutingKey string
	UID        string
}

// AddressColumns returns the COPY column list, matching CopyValues order.
func AddressColumns() []string {
	return []string{
		"load_batch_id",
		"source_file_id",
		"source_row_number",
		"source_row_hash",
		"address_id",
		"address",
		"raw_eircode",
		"eircode",
		"routing_key",
		"uid",
	}
}

// CopyValues returns the row in AddressColumns order.
func (r *AddressRecord) CopyValues() []any {
	return []any{
		r.LoadBatchID,
		r.SourceFileID,
		r.SourceRowNumber,
		r.SourceRowHash,
		r.AddressID,
		r.Address,
		r.RawEircode,
		r.Eircode,
		r.RoutingKey,
		r.UID,
	}
}
