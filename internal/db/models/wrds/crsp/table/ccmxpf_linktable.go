package table

import (
	"github.com/go-jet/jet/v2/postgres"
)

var CcmxpfLinktable = newCcmxpfLinktableTable("crsp", "ccmxpf_linktable", "")

type ccmxpfLinktableTable struct {
	postgres.Table

	// Columns
	Gvkey     postgres.ColumnString
	Linkprim  postgres.ColumnString
	Liid      postgres.ColumnString
	Linktype  postgres.ColumnString
	Lpermno   postgres.ColumnInteger
	Lpermco   postgres.ColumnInteger
	Linkdt    postgres.ColumnDate
	Linkenddt postgres.ColumnDate
	Usedflag  postgres.ColumnInteger

	AllColumns     postgres.ColumnList
	MutableColumns postgres.ColumnList
}

type CcmxpfLinktableTable struct {
	ccmxpfLinktableTable

	EXCLUDED ccmxpfLinktableTable
}

// AS creates a new CcmxpfLinktableTable with the assigned alias
func (a CcmxpfLinktableTable) AS(alias string) *CcmxpfLinktableTable {
	return newCcmxpfLinktableTable(a.SchemaName(), a.TableName(), alias)
}

func newCcmxpfLinktableTable(schemaName, tableName, alias string) *CcmxpfLinktableTable {
	return &CcmxpfLinktableTable{
		ccmxpfLinktableTable: newCcmxpfLinktableTableImpl(schemaName, tableName, alias),
		EXCLUDED:             newCcmxpfLinktableTableImpl("", "excluded", ""),
	}
}

func newCcmxpfLinktableTableImpl(schemaName, tableName, alias string) ccmxpfLinktableTable {
	var (
		GvkeyColumn     = postgres.StringColumn("gvkey")
		LinkprimColumn  = postgres.StringColumn("linkprim")
		LiidColumn      = postgres.StringColumn("liid")
		LinktypeColumn  = postgres.StringColumn("linktype")
		LpermnoColumn   = postgres.IntegerColumn("lpermno")
		LpermcoColumn   = postgres.IntegerColumn("lpermco")
		LinkdtColumn    = postgres.DateColumn("linkdt")
		LinkenddtColumn = postgres.DateColumn("linkenddt")
		UsedflagColumn  = postgres.IntegerColumn("usedflag")
		allColumns      = postgres.ColumnList{GvkeyColumn, LinkprimColumn, LiidColumn, LinktypeColumn, LpermnoColumn, LpermcoColumn, LinkdtColumn, LinkenddtColumn, UsedflagColumn}
		mutableColumns  = postgres.ColumnList{GvkeyColumn, LinkprimColumn, LiidColumn, LinktypeColumn, LpermnoColumn, LpermcoColumn, LinkdtColumn, LinkenddtColumn, UsedflagColumn}
	)

	return ccmxpfLinktableTable{
		Table: postgres.NewTable(schemaName, tableName, alias, allColumns...),

		// Columns
		Gvkey:     GvkeyColumn,
		Linkprim:  LinkprimColumn,
		Liid:      LiidColumn,
		Linktype:  LinktypeColumn,
		Lpermno:   LpermnoColumn,
		Lpermco:   LpermcoColumn,
		Linkdt:    LinkdtColumn,
		Linkenddt: LinkenddtColumn,
		Usedflag:  UsedflagColumn,

		AllColumns:     allColumns,
		MutableColumns: mutableColumns,
	}
}
