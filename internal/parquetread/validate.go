package parquetread

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// EircodeColumn is the only column a source file must carry.
const EircodeColumn = "eircode"

// ValidateSchema checks that the Parquet schema has a string eircode column.
func ValidateSchema(schema *parquet.Schema) error {
	for _, field := range schema.Fields() {
		if strings.ToLower(field.Name()) != EircodeColumn {
			continue
		}
		if !field.Leaf() || field.Type().Kind() != parquet.ByteArray {
			return fmt.Errorf("column %s must be a string column", EircodeColumn)
		}
		return nil
	}
	return fmt.Errorf("missing required column: %s", EircodeColumn)
}
