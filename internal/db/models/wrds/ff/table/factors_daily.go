package table

import (
	"github.com/go-jet/jet/v2/postgres"
)

var FactorsDaily = newFactorsDailyTable("ff", "factors_daily", "")

type factorsDailyTable struct {
	postgres.Table

	// Columns
	Date  postgres.ColumnDate
	Mktrf postgres.ColumnFloat
	Smb   postgres.ColumnFloat
	Hml   postgres.ColumnFloat
	Rmw   postgres.ColumnFloat
	Cma   postgres.ColumnFloat
	Rf    postgres.ColumnFloat
	Umd   postgres.ColumnFloat

	AllColumns     postgres.ColumnList
	MutableColumns postgres.ColumnList
}

type FactorsDailyTable struct {
	factorsDailyTable

	EXCLUDED factorsDailyTable
}

// AS creates a new FactorsDailyTable with the assigned alias
func (a FactorsDailyTable) AS(alias string) *FactorsDailyTable {
	return newFactorsDailyTable(a.SchemaName(), a.TableName(), alias)
}

func newFactorsDailyTable(schemaName, tableName, alias string) *FactorsDailyTable {
	return &FactorsDailyTable{
		factorsDailyTable: newFactorsDailyTableImpl(schemaName, tableName, alias),
		EXCLUDED:          newFactorsDailyTableImpl("", "excluded", ""),
	}
}

func newFactorsDailyTableImpl(schemaName, tableName, alias string) factorsDailyTable {
	var (
		DateColumn     = postgres.DateColumn("date")
		MktrfColumn    = postgres.FloatColumn("mktrf")
		SmbColumn      = postgres.FloatColumn("smb")
		HmlColumn      = postgres.FloatColumn("hml")
		RmwColumn      = postgres.FloatColumn("rmw")
		CmaColumn      = postgres.FloatColumn("cma")
		RfColumn       = postgres.FloatColumn("rf")
		UmdColumn      = postgres.FloatColumn("umd")
		allColumns     = postgres.ColumnList{DateColumn, MktrfColumn, SmbColumn, HmlColumn, RmwColumn, CmaColumn, RfColumn, UmdColumn}
		mutableColumns = postgres.ColumnList{DateColumn, MktrfColumn, SmbColumn, HmlColumn, RmwColumn, CmaColumn, RfColumn, UmdColumn}
	)

	return factorsDailyTable{
		Table: postgres.NewTable(schemaName, tableName, alias, allColumns...),

		// Columns
		Date:  DateColumn,
		Mktrf: MktrfColumn,
		Smb:   SmbColumn,
		Hml:   HmlColumn,
		Rmw:   RmwColumn,
		Cma:   CmaColumn,
		Rf:    RfColumn,
		Umd:   UmdColumn,

		AllColumns:     allColumns,
		MutableColumns: mutableColumns,
	}
}
