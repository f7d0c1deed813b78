package model

// AddressRow mirrors the Parquet schema for a single address line.
// Only the eircode column is required; see parquetread.ValidateSchema.
type AddressRow struct {
	AddressID *string `parquet:"address_id,optional"`
	Address   *string `parquet:"address,optional"`
	Eircode   *string `parquet:"eircode,optional"`
}

// Values returns the row's fields with nil treated as empty.
func (r *AddressRow) Values() (addressID, address, code string) {
	return deref(r.AddressID), deref(r.Address), deref(r.Eircode)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
