package csv_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/shapestone/shape-tables/pkg/csv"
)

type score int16

type sampleRecord struct {
	ID      int32
	Name    string
	Score   score
	Weight  float64
	skipped string
	Ignored string `csv:"-"`
	Active  bool
}

func TestTypesOf(t *testing.T) {
	got, err := csv.TypesOf[sampleRecord]()
	if err != nil {
		t.Fatalf("TypesOf() error = %v", err)
	}
	want := []csv.Type{csv.Int32, csv.String, csv.Int16, csv.Float64, csv.Bool}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TypesOf() = %v, want %v", got, want)
	}
}

func TestTypesOf_Unsupported(t *testing.T) {
	type withSlice struct {
		Tags []string
	}
	type empty struct{}

	if _, err := csv.TypesOf[withSlice](); !errors.Is(err, csv.ErrUnsupportedType) {
		t.Errorf("slice field: error = %v, want ErrUnsupportedType", err)
	}
	if _, err := csv.TypesOf[empty](); !errors.Is(err, csv.ErrUnsupportedType) {
		t.Errorf("no fields: error = %v, want ErrUnsupportedType", err)
	}
	if _, err := csv.TypesOf[int](); !errors.Is(err, csv.ErrUnsupportedType) {
		t.Errorf("non-struct: error = %v, want ErrUnsupportedType", err)
	}
}

func TestReadStructs(t *testing.T) {
	input := "# id;name;score;weight;active\n1;Alice;90;61.5;1\n2;Bob;abc;0.5x;0\n"

	got, err := csv.ReadStructs[sampleRecord](strings.NewReader(input), semicolon())
	if err != nil {
		t.Fatalf("ReadStructs() error = %v", err)
	}

	want := []sampleRecord{
		{ID: 1, Name: "Alice", Score: 90, Weight: 61.5, Active: true},
		{ID: 2, Name: "Bob", Score: 0, Weight: 0.5, Active: false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadStructs() = %+v, want %+v", got, want)
	}
}

func TestReadStructs_FieldCount(t *testing.T) {
	_, err := csv.ReadStructs[sampleRecord](strings.NewReader("1;Alice;90\n"), semicolon())
	if !errors.Is(err, csv.ErrFieldCount) {
		t.Errorf("error = %v, want ErrFieldCount", err)
	}
}

func TestReadStructsFile(t *testing.T) {
	type point struct {
		X, Y float32
	}
	path := filepath.Join(t.TempDir(), "points.csv")
	if err := os.WriteFile(path, []byte("1,2\n3.5,-4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := csv.ReadStructsFile[point](path, csv.DefaultReaderOptions())
	if err != nil {
		t.Fatalf("ReadStructsFile() error = %v", err)
	}
	want := []point{{1, 2}, {3.5, -4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadStructsFile() = %v, want %v", got, want)
	}
}

func TestDecode_ColumnMismatch(t *testing.T) {
	type pair struct {
		A, B string
	}
	table, err := csv.ReadStrings(strings.NewReader("a,b,c\n"), csv.DefaultReaderOptions())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := csv.Decode[pair](table); !errors.Is(err, csv.ErrFieldCount) {
		t.Errorf("Decode() error = %v, want ErrFieldCount", err)
	}
}

func TestDecode_NilTable(t *testing.T) {
	type pair struct {
		A, B string
	}
	got, err := csv.Decode[pair](nil)
	if got != nil || !errors.Is(err, csv.ErrNilTable) {
		t.Errorf("Decode(nil) = %v, %v; want nil, ErrNilTable", got, err)
	}
}

func TestDecode_FromUniformTable(t *testing.T) {
	type pair struct {
		A int
		B string
	}
	table, err := csv.ReadStrings(strings.NewReader(" 7z,x\n"), csv.DefaultReaderOptions())
	if err != nil {
		t.Fatal(err)
	}
	got, err := csv.Decode[pair](table)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if want := []pair{{7, "x"}}; !reflect.DeepEqual(got, want) {
		t.Errorf("Decode() = %v, want %v", got, want)
	}
}
