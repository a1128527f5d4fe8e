// Package wrds holds go-jet bindings for the WRDS warehouse tables
// this module queries. The bindings are hand-maintained against the
// WRDS Postgres schemas (crsp, comp, ff); column sets are trimmed to
// the columns the repositories actually read, since the source tables
// (comp.funda in particular) carry hundreds of columns.
package wrds
