package table

import (
	"github.com/go-jet/jet/v2/postgres"
)

var Dsf = newDsfTable("crsp", "dsf", "")

type dsfTable struct {
	postgres.Table

	// Columns
	Cusip   postgres.ColumnString
	Permno  postgres.ColumnInteger
	Permco  postgres.ColumnInteger
	Issuno  postgres.ColumnInteger
	Hexcd   postgres.ColumnInteger
	Hsiccd  postgres.ColumnInteger
	Date    postgres.ColumnDate
	Bidlo   postgres.ColumnFloat
	Askhi   postgres.ColumnFloat
	Prc     postgres.ColumnFloat
	Vol     postgres.ColumnFloat
	Ret     postgres.ColumnFloat
	Bid     postgres.ColumnFloat
	Ask     postgres.ColumnFloat
	Shrout  postgres.ColumnFloat
	Cfacpr  postgres.ColumnFloat
	Cfacshr postgres.ColumnFloat
	Openprc postgres.ColumnFloat
	Numtrd  postgres.ColumnInteger
	Retx    postgres.ColumnFloat

	AllColumns     postgres.ColumnList
	MutableColumns postgres.ColumnList
}

type DsfTable struct {
	dsfTable

	EXCLUDED dsfTable
}

// AS creates a new DsfTable with the assigned alias
func (a DsfTable) AS(alias string) *DsfTable {
	return newDsfTable(a.SchemaName(), a.TableName(), alias)
}

func newDsfTable(schemaName, tableName, alias string) *DsfTable {
	return &DsfTable{
		dsfTable: newDsfTableImpl(schemaName, tableName, alias),
		EXCLUDED: newDsfTableImpl("", "excluded", ""),
	}
}

func newDsfTableImpl(schemaName, tableName, alias string) dsfTable {
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
		OpenprcColumn  = postgres.FloatColumn("openprc")
		NumtrdColumn   = postgres.IntegerColumn("numtrd")
		RetxColumn     = postgres.FloatColumn("retx")
		allColumns     = postgres.ColumnList{CusipColumn, PermnoColumn, PermcoColumn, IssunoColumn, HexcdColumn, HsiccdColumn, DateColumn, BidloColumn, AskhiColumn, PrcColumn, VolColumn, RetColumn, BidColumn, AskColumn, ShroutColumn, CfacprColumn, CfacshrColumn, OpenprcColumn, NumtrdColumn, RetxColumn}
		mutableColumns = postgres.ColumnList{CusipColumn, PermnoColumn, PermcoColumn, IssunoColumn, HexcdColumn, HsiccdColumn, DateColumn, BidloColumn, AskhiColumn, PrcColumn, VolColumn, RetColumn, BidColumn, AskColumn, ShroutColumn, CfacprColumn, CfacshrColumn, OpenprcColumn, NumtrdColumn, RetxColumn}
	)

	return dsfTable{
		Table: postgres.NewTable(schemaName, tableName, alias, allColumns...),

		// Columns
		Cusip:   CusipColumn,
		Permno:  PermnoColumn,
		Permco:  PermcoColumn,
		Issuno:  IssunoColumn,
		Hexcd:   HexcdColumn,
		Hsiccd:  HsiccdColumn,
		Date:    DateColumn,
		Bidlo:   BidloColumn,
		Askhi:   AskhiColumn,
		Prc:     PrcColumn,
		Vol:     VolColumn,
		Ret:     RetColumn,
		Bid:     BidColumn,
		Ask:     AskColumn,
		Shrout:  ShroutColumn,
		Cfacpr:  CfacprColumn,
		Cfacshr: CfacshrColumn,
		Openprc: OpenprcColumn,
		Numtrd:  NumtrdColumn,
		Retx:    RetxColumn,

		AllColumns:     allColumns,
		MutableColumns: mutableColumns,
	}
}
