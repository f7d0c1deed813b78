package normalize

import (
	"errors"

	"github.com/google/uuid"

	"github.com/gyeh/eircode"
	"github.com/gyeh/eircode/internal/model"
)

// ErrMissingEircode is returned for rows with a null or blank eircode.
var ErrMissingEircode = errors.New("missing eircode")

// ToAddressRecord validates the row's eircode under opts and converts it into
// a DB-ready AddressRecord. A code that fails the check is reported as an
// *eircode.InvalidEircodeError, so callers can count rejects with errors.Is.
func ToAddressRecord(row *model.AddressRow, batchID uuid.UUID, sourceFileID, rowNum int64, opts eircode.Options) (*model.AddressRecord, error) {
	raw := Trimmed(row.Eircode)
	if raw == nil {
		return nil, ErrMissingEircode
	}

	ok, err := eircode.Check(*raw, opts)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &eircode.InvalidEircodeError{Input: *raw}
	}

	code, err := eircode.Parse(*raw)
	if err != nil {
		return nil, err
	}

	id, addr, _ := row.Values()
	return &model.AddressRecord{
		LoadBatchID:     batchID,
		SourceFileID:    sourceFileID,
		SourceRowNumber: rowNum,
		SourceRowHash:   RowHashFromValues(rowNum, id, addr, *raw),
		AddressID:       Trimmed(row.AddressID),
		Address:         Trimmed(row.Address),
		RawEircode:      *raw,
		Eircode:         code.String(),
		RoutingKey:      code.RoutingKey,
		UID:             code.UID,
	}, nil
}
