package table

import (
	"github.com/go-jet/jet/v2/postgres"
)

var Funda = newFundaTable("comp", "funda", "")

type fundaTable struct {
	postgres.Table

	// Columns
	Gvkey    postgres.ColumnString
	Datadate postgres.ColumnDate
	Fyear    postgres.ColumnInteger
	Indfmt   postgres.ColumnString
	Consol   postgres.ColumnString
	Popsrc   postgres.ColumnString
	Datafmt  postgres.ColumnString
	Tic      postgres.ColumnString
	At       postgres.ColumnFloat
	Lt       postgres.ColumnFloat
	Seq      postgres.ColumnFloat
	Ceq      postgres.ColumnFloat
	Pstk     postgres.ColumnFloat
	Pstkrv   postgres.ColumnFloat
	Pstkl    postgres.ColumnFloat
	Txditc   postgres.ColumnFloat
	Txdb     postgres.ColumnFloat
	Itcb     postgres.ColumnFloat
	Revt     postgres.ColumnFloat
	Cogs     postgres.ColumnFloat
	Xsga     postgres.ColumnFloat
	Xint     postgres.ColumnFloat
	Sale     postgres.ColumnFloat

	AllColumns     postgres.ColumnList
	MutableColumns postgres.ColumnList
}

type FundaTable struct {
	fundaTable

	EXCLUDED fundaTable
}

// AS creates a new FundaTable with the assigned alias
func (a FundaTable) AS(alias string) *FundaTable {
	return newFundaTable(a.SchemaName(), a.TableName(), alias)
}

func newFundaTable(schemaName, tableName, alias string) *FundaTable {
	return &FundaTable{
		fundaTable: newFundaTableImpl(schemaName, tableName, alias),
		EXCLUDED:   newFundaTableImpl("", "excluded", ""),
	}
}

func newFundaTableImpl(schemaName, tableName, alias string) fundaTable {
	var (
		GvkeyColumn    = postgres.StringColumn("gvkey")
		DatadateColumn = postgres.DateColumn("datadate")
		FyearColumn    = postgres.IntegerColumn("fyear")
		IndfmtColumn   = postgres.StringColumn("indfmt")
		ConsolColumn   = postgres.StringColumn("consol")
		PopsrcColumn   = postgres.StringColumn("popsrc")
		DatafmtColumn  = postgres.StringColumn("datafmt")
		TicColumn      = postgres.StringColumn("tic")
		AtColumn       = postgres.FloatColumn("at")
		LtColumn       = postgres.FloatColumn("lt")
		SeqColumn      = postgres.FloatColumn("seq")
		CeqColumn      = postgres.FloatColumn("ceq")
		PstkColumn     = postgres.FloatColumn("pstk")
		PstkrvColumn   = postgres.FloatColumn("pstkrv")
		PstklColumn    = postgres.FloatColumn("pstkl")
		TxditcColumn   = postgres.FloatColumn("txditc")
		TxdbColumn     = postgres.FloatColumn("txdb")
		ItcbColumn     = postgres.FloatColumn("itcb")
		RevtColumn     = postgres.FloatColumn("revt")
		CogsColumn     = postgres.FloatColumn("cogs")
		XsgaColumn     = postgres.FloatColumn("xsga")
		XintColumn     = postgres.FloatColumn("xint")
		SaleColumn     = postgres.FloatColumn("sale")
		allColumns     = postgres.ColumnList{GvkeyColumn, DatadateColumn, FyearColumn, IndfmtColumn, ConsolColumn, PopsrcColumn, DatafmtColumn, TicColumn, AtColumn, LtColumn, SeqColumn, CeqColumn, PstkColumn, PstkrvColumn, PstklColumn, TxditcColumn, TxdbColumn, ItcbColumn, RevtColumn, CogsColumn, XsgaColumn, XintColumn, SaleColumn}
		mutableColumns = postgres.ColumnList{GvkeyColumn, DatadateColumn, FyearColumn, IndfmtColumn, ConsolColumn, PopsrcColumn, DatafmtColumn, TicColumn, AtColumn, LtColumn, SeqColumn, CeqColumn, PstkColumn, PstkrvColumn, PstklColumn, TxditcColumn, TxdbColumn, ItcbColumn, RevtColumn, CogsColumn, XsgaColumn, XintColumn, SaleColumn}
	)

	return fundaTable{
		Table: postgres.NewTable(schemaName, tableName, alias, allColumns...),

		// Columns
		Gvkey:    GvkeyColumn,
		Datadate: DatadateColumn,
		Fyear:    FyearColumn,
		Indfmt:   IndfmtColumn,
		Consol:   ConsolColumn,
		Popsrc:   PopsrcColumn,
		Datafmt:  DatafmtColumn,
		Tic:      TicColumn,
		At:       AtColumn,
		Lt:       LtColumn,
		Seq:      SeqColumn,
		Ceq:      CeqColumn,
		Pstk:     PstkColumn,
		Pstkrv:   PstkrvColumn,
		Pstkl:    PstklColumn,
		Txditc:   TxditcColumn,
		Txdb:     TxdbColumn,
		Itcb:     ItcbColumn,
		Revt:     RevtColumn,
		Cogs:     CogsColumn,
		Xsga:     XsgaColumn,
		Xint:     XintColumn,
		Sale:     SaleColumn,

		AllColumns:     allColumns,
		MutableColumns: mutableColumns,
	}
}
