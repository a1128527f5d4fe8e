package table

import (
	"github.com/go-jet/jet/v2/postgres"
)

var Msenames = newMsenamesTable("crsp", "msenames", "")

type msenamesTable struct {
	postgres.Table

	// Columns
	Permno   postgres.ColumnInteger
	Namedt   postgres.ColumnDate
	Nameendt postgres.ColumnDate
	Shrcd    postgres.ColumnInteger
	Exchcd   postgres.ColumnInteger
	Siccd    postgres.ColumnInteger
	Ncusip   postgres.ColumnString
	Ticker   postgres.ColumnString
	Comnam   postgres.ColumnString
	Shrcls   postgres.ColumnString
	Permco   postgres.ColumnInteger
	Hexcd    postgres.ColumnInteger
	Cusip    postgres.ColumnString

	AllColumns     postgres.ColumnList
	MutableColumns postgres.ColumnList
}

type MsenamesTable struct {
	msenamesTable

	EXCLUDED msenamesTable
}

// AS creates a new MsenamesTable with the assigned alias
func (a MsenamesTable) AS(alias string) *MsenamesTable {
	return newMsenamesTable(a.SchemaName(), a.TableName(), alias)
}

func newMsenamesTable(schemaName, tableName, alias string) *MsenamesTable {
	return &MsenamesTable{
		msenamesTable: newMsenamesTableImpl(schemaName, tableName, alias),
		EXCLUDED:      newMsenamesTableImpl("", "excluded", ""),
	}
}

func newMsenamesTableImpl(schemaName, tableName, alias string) msenamesTable {
	var (
		PermnoColumn   = postgres.IntegerColumn("permno")
		NamedtColumn   = postgres.DateColumn("namedt")
		NameendtColumn = postgres.DateColumn("nameendt")
		ShrcdColumn    = postgres.IntegerColumn("shrcd")
		ExchcdColumn   = postgres.IntegerColumn("exchcd")
		SiccdColumn    = postgres.IntegerColumn("siccd")
		NcusipColumn   = postgres.StringColumn("ncusip")
		TickerColumn   = postgres.StringColumn("ticker")
		ComnamColumn   = postgres.StringColumn("comnam")
		ShrclsColumn   = postgres.StringColumn("shrcls")
		PermcoColumn   = postgres.IntegerColumn("permco")
		HexcdColumn    = postgres.IntegerColumn("hexcd")
		CusipColumn    = postgres.StringColumn("cusip")
		allColumns     = postgres.ColumnList{PermnoColumn, NamedtColumn, NameendtColumn, ShrcdColumn, ExchcdColumn, SiccdColumn, NcusipColumn, TickerColumn, ComnamColumn, ShrclsColumn, PermcoColumn, HexcdColumn, CusipColumn}
		mutableColumns = postgres.ColumnList{PermnoColumn, NamedtColumn, NameendtColumn, ShrcdColumn, ExchcdColumn, SiccdColumn, NcusipColumn, TickerColumn, ComnamColumn, ShrclsColumn, PermcoColumn, HexcdColumn, CusipColumn}
	)

	return msenamesTable{
		Table: postgres.NewTable(schemaName, tableName, alias, allColumns...),

		// Columns
		Permno:   PermnoColumn,
		Namedt:   NamedtColumn,
		Nameendt: NameendtColumn,
		Shrcd:    ShrcdColumn,
		Exchcd:   ExchcdColumn,
		Siccd:    SiccdColumn,
		Ncusip:   NcusipColumn,
		Ticker:   TickerColumn,
		Comnam:   ComnamColumn,
		Shrcls:   ShrclsColumn,
		Permco:   PermcoColumn,
		Hexcd:    HexcdColumn,
		Cusip:    CusipColumn,

		AllColumns:     allColumns,
		MutableColumns: mutableColumns,
	}
}
