package table

import (
	"github.com/go-jet/jet/v2/postgres"
)

var Msedelist = newMsedelistTable("crsp", "msedelist", "")

type msedelistTable struct {
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

type MsedelistTable struct {
	msedelistTable

	EXCLUDED msedelistTable
}

// AS creates a new MsedelistTable with the assigned alias
func (a MsedelistTable) AS(alias string) *MsedelistTable {
	return newMsedelistTable(a.SchemaName(), a.TableName(), alias)
}

func newMsedelistTable(schemaName, tableName, alias string) *MsedelistTable {
	return &MsedelistTable{
		msedelistTable: newMsedelistTableImpl(schemaName, tableName, alias),
		EXCLUDED:       newMsedelistTableImpl("", "excluded", ""),
	}
}

func newMsedelistTableImpl(schemaName, tableName, alias string) msedelistTable {
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

	return msedelistTable{
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
