package table

import (
	"github.com/go-jet/jet/v2/postgres"
)

var Dsedelist = newDsedelistTable("crsp", "dsedelist", "")

type dsedelistTable struct {
	postgres.Table

	// Columns
	Permno postgres.ColumnInteger
	Dlstdt postgres.ColumnDate
	Dlstcd postgres.ColumnInteger
	Nwperm postgres.ColumnInteger
	Nwcomp postgres.ColumnInteger
	Nextdt postgres.ColumnDate
	Dlamt  postgres.ColumnFloat
	Dlretx postgres.ColumnFloat
	Dlprc  postgres.ColumnFloat
	Dlpdt  postgres.ColumnDate
	Dlret  postgres.ColumnFloat

	AllColumns     postgres.ColumnList
	MutableColumns postgres.ColumnList
}

type DsedelistTable struct {
	dsedelistTable

	EXCLUDED dsedelistTable
}

// AS creates a new DsedelistTable with the assigned alias
func (a DsedelistTable) AS(alias string) *DsedelistTable {
	return newDsedelistTable(a.SchemaName(), a.TableName(), alias)
}

func newDsedelistTable(schemaName, tableName, alias string) *DsedelistTable {
	return &DsedelistTable{
		dsedelistTable: newDsedelistTableImpl(schemaName, tableName, alias),
		EXCLUDED:       newDsedelistTableImpl("", "excluded", ""),
	}
}

func newDsedelistTableImpl(schemaName, tableName, alias string) dsedelistTable {
	var (
		PermnoColumn   = postgres.IntegerColumn("permno")
		DlstdtColumn   = postgres.DateColumn("dlstdt")
		DlstcdColumn   = postgres.IntegerColumn("dlstcd")
		NwpermColumn   = postgres.IntegerColumn("nwperm")
		NwcompColumn   = postgres.IntegerColumn("nwcomp")
		NextdtColumn   = postgres.DateColumn("nextdt")
		DlamtColumn    = postgres.FloatColumn("dlamt")
		DlretxColumn   = postgres.FloatColumn("dlretx")
		DlprcColumn    = postgres.FloatColumn("dlprc")
		DlpdtColumn    = postgres.DateColumn("dlpdt")
		DlretColumn    = postgres.FloatColumn("dlret")
		allColumns     = postgres.ColumnList{PermnoColumn, DlstdtColumn, DlstcdColumn, NwpermColumn, NwcompColumn, NextdtColumn, DlamtColumn, DlretxColumn, DlprcColumn, DlpdtColumn, DlretColumn}
		mutableColumns = postgres.ColumnList{PermnoColumn, DlstdtColumn, DlstcdColumn, NwpermColumn, NwcompColumn, NextdtColumn, DlamtColumn, DlretxColumn, DlprcColumn, DlpdtColumn, DlretColumn}
	)

	return dsedelistTable{
		Table: postgres.NewTable(schemaName, tableName, alias, allColumns...),

		// Columns
		Permno: PermnoColumn,
		Dlstdt: DlstdtColumn,
		Dlstcd: DlstcdColumn,
		Nwperm: NwpermColumn,
		Nwcomp: NwcompColumn,
		Nextdt: NextdtColumn,
		Dlamt:  DlamtColumn,
		Dlretx: DlretxColumn,
		Dlprc:  DlprcColumn,
		Dlpdt:  DlpdtColumn,
		Dlret:  DlretColumn,

		AllColumns:     allColumns,
		MutableColumns: mutableColumns,
	}
}
