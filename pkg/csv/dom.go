package csv

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// ============================================================================
// AST Conversion (for integration with AST-based APIs)
// ============================================================================

// ToAST converts the Table to an AST ArrayDataNode.
// Each record becomes an ArrayDataNode of LiteralNodes whose values have the
// Go type of their column (see Value.Interface).
func (t *Table) ToAST() *ast.ArrayDataNode {
	records := make([]ast.SchemaNode, len(t.rows))
	for i, row := range t.rows {
		fields := make([]ast.SchemaNode, len(row))
		for j, v := range row {
			fields[j] = ast.NewLiteralNode(v.Interface(), ast.ZeroPosition())
		}
		records[i] = ast.NewArrayDataNode(fields, ast.ZeroPosition())
	}
	return ast.NewArrayDataNode(records, ast.ZeroPosition())
}

// FromAST creates a uniform String table from an AST ArrayDataNode of
// records, such as the ones produced by ToAST or by other Shape parsers.
// Literal values that are not strings are formatted with fmt.
// All records must have the same number of fields.
func FromAST(node ast.SchemaNode) (*Table, error) {
	arrayNode, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected *ast.ArrayDataNode, got %T", node)
	}

	t := &Table{elem: String, uniform: true}
	for i, elem := range arrayNode.Elements() {
		recordNode, ok := elem.(*ast.ArrayDataNode)
		if !ok {
			return nil, fmt.Errorf("expected record to be *ast.ArrayDataNode, got %T", elem)
		}

		fieldNodes := recordNode.Elements()
		if i == 0 {
			t.cols = len(fieldNodes)
		} else if len(fieldNodes) != t.cols {
			return nil, &FieldCountError{Row: i + 1, Got: len(fieldNodes), Expected: t.cols}
		}

		row := make(Row, 0, len(fieldNodes))
		for _, fieldNode := range fieldNodes {
			literalNode, ok := fieldNode.(*ast.LiteralNode)
			if !ok {
				return nil, fmt.Errorf("expected field to be *ast.LiteralNode, got %T", fieldNode)
			}
			text, ok := literalNode.Value().(string)
			if !ok {
				text = fmt.Sprint(literalNode.Value())
			}
			row = append(row, Convert(String, text))
		}
		t.rows = append(t.rows, row)
	}

	return t, nil
}
