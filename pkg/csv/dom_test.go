package csv_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-tables/pkg/csv"
)

func TestTable_ToAST(t *testing.T) {
	types := []csv.Type{csv.Int32, csv.String, csv.Float64}
	table, err := csv.Read(strings.NewReader("1,a,0.5\n2,b,1.5\n"), types, csv.DefaultReaderOptions())
	if err != nil {
		t.Fatal(err)
	}

	node := table.ToAST()
	records := node.Elements()
	if len(records) != 2 {
		t.Fatalf("ToAST() has %d records, want 2", len(records))
	}

	second, ok := records[1].(*ast.ArrayDataNode)
	if !ok {
		t.Fatalf("record is %T, want *ast.ArrayDataNode", records[1])
	}
	fields := second.Elements()
	want := []any{int32(2), "b", 1.5}
	for i, f := range fields {
		lit, ok := f.(*ast.LiteralNode)
		if !ok {
			t.Fatalf("field %d is %T, want *ast.LiteralNode", i, f)
		}
		if lit.Value() != want[i] {
			t.Errorf("field %d = %#v, want %#v", i, lit.Value(), want[i])
		}
	}
}

func TestFromAST(t *testing.T) {
	node := ast.NewArrayDataNode([]ast.SchemaNode{
		ast.NewArrayDataNode([]ast.SchemaNode{
			ast.NewLiteralNode("x", ast.ZeroPosition()),
			ast.NewLiteralNode(int64(3), ast.ZeroPosition()),
		}, ast.ZeroPosition()),
		ast.NewArrayDataNode([]ast.SchemaNode{
			ast.NewLiteralNode("y", ast.ZeroPosition()),
			ast.NewLiteralNode("4", ast.ZeroPosition()),
		}, ast.ZeroPosition()),
	}, ast.ZeroPosition())

	table, err := csv.FromAST(node)
	if err != nil {
		t.Fatalf("FromAST() error = %v", err)
	}
	if table.Len() != 2 || table.Cols() != 2 || !table.Uniform() {
		t.Fatalf("FromAST() Len, Cols, Uniform = %d, %d, %v", table.Len(), table.Cols(), table.Uniform())
	}
	row, _ := table.Row(0)
	if got := row.Strings(); got[0] != "x" || got[1] != "3" {
		t.Errorf("row 0 = %q, want [x 3]", got)
	}
}

func TestFromAST_Errors(t *testing.T) {
	lit := func(s string) ast.SchemaNode { return ast.NewLiteralNode(s, ast.ZeroPosition()) }
	arr := func(nodes ...ast.SchemaNode) *ast.ArrayDataNode {
		return ast.NewArrayDataNode(nodes, ast.ZeroPosition())
	}

	if _, err := csv.FromAST(lit("x")); err == nil {
		t.Error("FromAST(literal) succeeded")
	}
	if _, err := csv.FromAST(arr(lit("x"))); err == nil {
		t.Error("FromAST(array of literals) succeeded")
	}
	if _, err := csv.FromAST(arr(arr(arr()))); err == nil {
		t.Error("FromAST(nested array field) succeeded")
	}

	_, err := csv.FromAST(arr(arr(lit("a"), lit("b")), arr(lit("c"))))
	var countErr *csv.FieldCountError
	if !errors.As(err, &countErr) {
		t.Fatalf("ragged records: error = %v, want *FieldCountError", err)
	}
	if countErr.Row != 2 || countErr.Line != 0 {
		t.Errorf("ragged records: Row, Line = %d, %d; want 2, 0", countErr.Row, countErr.Line)
	}
	if got, want := err.Error(), "inconsistent CSV: row 2 contains 1 values, expected 2"; got != want {
		t.Errorf("ragged records: error = %q, want %q", got, want)
	}
}

func TestTable_ASTRoundTrip(t *testing.T) {
	table, err := csv.ReadStrings(strings.NewReader("a;b\nc;d\n"), semicolon())
	if err != nil {
		t.Fatal(err)
	}
	back, err := csv.FromAST(table.ToAST())
	if err != nil {
		t.Fatalf("FromAST() error = %v", err)
	}
	if !back.Equal(table) {
		t.Error("round trip through AST changed the table")
	}
}
