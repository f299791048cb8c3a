// Package dtype provides the built-in schema node types (boolean, integer,
// string, date, list, dict, any) and NewRegistry, which returns a
// distaff.Registry preloaded with them.
//
// Each type declares its recognized options through an explicit option struct
// decoded from the schema document; unrecognized options are rejected during
// schema self-validation before the struct decode runs.
package dtype
