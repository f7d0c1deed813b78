package sql

import (
	"embed"
)

// Migrations holds the schema DDL, applied in filename order.
//
//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/register_source_file.sql
var RegisterSourceFile string

//go:embed queries/lookup_source_file.sql
var LookupSourceFile string

//go:embed queries/update_source_status.sql
var UpdateSourceStatus string

//go:embed queries/finalize_source_file.sql
var FinalizeSourceFile string

//go:embed queries/delete_superseded_batches.sql
var DeleteSupersededBatches string

//go:embed queries/routing_key_counts.sql
var RoutingKeyCounts string
