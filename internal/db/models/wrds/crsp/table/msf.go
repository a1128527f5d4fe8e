package table

import (
	"github.com/go-jet/jet/v2/postgres"
)

var Msf = newMsfTable("crsp", "msf", "")

type msfTable struct {
	postgres.Table

	// Columns
	Cusip    postgres.ColumnString
	Permno   postgres.ColumnInteger
	Permco   postgres.ColumnInteger
	Issuno   postgres.ColumnInteger
	Hexcd    postgres.ColumnInteger
	Hsiccd   postgres.ColumnInteger
	Date     postgres.ColumnDate
	Bidlo    postgres.ColumnFloat
	Askhi    postgres.ColumnFloat
	Prc      postgres.ColumnFloat
	Vol      postgres.ColumnFloat
	Ret      postgres.ColumnFloat
	Bid      postgres.ColumnFloat
	Ask      postgres.ColumnFloat
	Shrout   postgres.ColumnFloat
	Cfacpr   postgres.ColumnFloat
	Cfacshr  postgres.ColumnFloat
	Altprc   postgres.ColumnFloat
	Spread   postgres.ColumnFloat
	Altprcdt postgres.ColumnDate
	Retx     postgres.ColumnFloat

	AllColumns     postgres.ColumnList
	MutableColumns postgres.ColumnList
}

type MsfTable struct {
	msfTable

	EXCLUDED msfTable
}

// AS creates a new MsfTable with the assigned alias
func (a MsfTable) AS(alias string) *MsfTable {
	return newMsfTable(a.SchemaName(), a.TableName(), alias)
}

func newMsfTable(schemaName, tableName, alias string) *MsfTable {
	return &MsfTable{
		msfTable: newMsfTableImpl(schemaName, tableName, alias),
		EXCLUDED: newMsfTableImpl("", "excluded", ""),
	}
}

func newMsfTableImpl(schemaName, tableName, alias string) msfTable {
	var (
		CusipColumn    = postgres.StringColumn("cusip")
		PermnoColumn   = postgres.IntegerColumn("permno")
		PermcoColumn   = postgres.IntegerColumn("permco")
		IssunoColumn   = postgres.IntegerColumn("issuno")
		HexcdColumn    = postgres.IntegerColumn("hexcd")
		HsiccdColumn   = postgres.IntegerColumn("hsiccd")
		DateColumn     = postgres.DateColumn("date")
		BidloColumn    = postgres.FloatColumn("bidlo")
		AskhiColumn    = postgres.FloatColumn("askhi")
		PrcColumn      = postgres.FloatColumn("prc")
		VolColumn      = postgres.FloatColumn("vol")
		RetColumn      = postgres.FloatColumn("ret")
		BidColumn      = postgres.FloatColumn("bid")
		AskColumn      = postgres.FloatColumn("ask")
		ShroutColumn   = postgres.FloatColumn("shrout")
		CfacprColumn   = postgres.FloatColumn("cfacpr")
		CfacshrColumn  = postgres.FloatColumn("cfacshr")
		AltprcColumn   = postgres.FloatColumn("altprc")
		SpreadColumn   = postgres.FloatColumn("spread")
		AltprcdtColumn = postgres.DateColumn("altprcdt")
		RetxColumn     = postgres.FloatColumn("retx")
		allColumns     = postgres.ColumnList{CusipColumn, PermnoColumn, PermcoColumn, IssunoColumn, HexcdColumn, HsiccdColumn, DateColumn, BidloColumn, AskhiColumn, PrcColumn, VolColumn, RetColumn, BidColumn, AskColumn, ShroutColumn, CfacprColumn, CfacshrColumn, AltprcColumn, SpreadColumn, AltprcdtColumn, RetxColumn}
		mutableColumns = postgres.ColumnList{CusipColumn, PermnoColumn, PermcoColumn, IssunoColumn, HexcdColumn, HsiccdColumn, DateColumn, BidloColumn, AskhiColumn, PrcColumn, VolColumn, RetColumn, BidColumn, AskColumn, ShroutColumn, CfacprColumn, CfacshrColumn, AltprcColumn, SpreadColumn, AltprcdtColumn, RetxColumn}
	)

	return msfTable{
		Table: postgres.NewTable(schemaName, tableName, alias, allColumns...),

		// Columns
		Cusip:    CusipColumn,
		Permno:   PermnoColumn,
		Permco:   PermcoColumn,
		Issuno:   IssunoColumn,
		Hexcd:    HexcdColumn,
		Hsiccd:   HsiccdColumn,
		Date:     DateColumn,
		Bidlo:    BidloColumn,
		Askhi:    AskhiColumn,
		Prc:      PrcColumn,
		Vol:      VolColumn,
		Ret:      RetColumn,
		Bid:      BidColumn,
		Ask:      AskColumn,
		Shrout:   ShroutColumn,
		Cfacpr:   CfacprColumn,
		Cfacshr:  CfacshrColumn,
		Altprc:   AltprcColumn,
		Spread:   SpreadColumn,
		Altprcdt: AltprcdtColumn,
		Retx:     RetxColumn,

		AllColumns:     allColumns,
		MutableColumns: mutableColumns,
	}
}
