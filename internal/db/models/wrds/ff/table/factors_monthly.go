package table

import (
	"github.com/go-jet/jet/v2/postgres"
)

var FactorsMonthly = newFactorsMonthlyTable("ff", "factors_monthly", "")

type factorsMonthlyTable struct {
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

type FactorsMonthlyTable struct {
	factorsMonthlyTable

	EXCLUDED factorsMonthlyTable
}

// AS creates a new FactorsMonthlyTable with the assigned alias
func (a FactorsMonthlyTable) AS(alias string) *FactorsMonthlyTable {
	return newFactorsMonthlyTable(a.SchemaName(), a.TableName(), alias)
}

func newFactorsMonthlyTable(schemaName, tableName, alias string) *FactorsMonthlyTable {
	return &FactorsMonthlyTable{
		factorsMonthlyTable: newFactorsMonthlyTableImpl(schemaName, tableName, alias),
		EXCLUDED:            newFactorsMonthlyTableImpl("", "excluded", ""),
	}
}

func newFactorsMonthlyTableImpl(schemaName, tableName, alias string) factorsMonthlyTable {
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

	return factorsMonthlyTable{
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
