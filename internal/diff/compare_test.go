package diff

import (
	"math"
	"testing"

	"github.com/sheetops/sheetdiff/internal/table"
)

func TestEqualMissingValues(t *testing.T) {
	tests := []struct {
		name string
		a, b table.Value
		want bool
	}{
		{"null vs null", table.Null(), table.Null(), true},
		{"null vs nan", table.Null(), table.Float(math.NaN()), true},
		{"nan vs nan", table.Float(math.NaN()), table.Float(math.NaN()), true},
		{"null vs zero", table.Null(), table.Int(0), false},
		{"null vs empty text", table.Null(), table.Text(""), true}, // both read as "" in the text step
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b, 0, false); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEqualNumeric(t *testing.T) {
	tests := []struct {
		name      string
		a, b      table.Value
		tolerance float64
		want      bool
	}{
		{"exact ints", table.Int(5), table.Int(5), 0, true},
		{"int vs float same", table.Int(5), table.Float(5.0), 0, true},
		{"numeric text vs int", table.Text("5.0"), table.Int(5), 0, true},
		{"numeric text vs text", table.Text("5"), table.Text("5.00"), 0, true},
		{"different ints", table.Int(10), table.Int(11), 0, false},
		{"within tolerance", table.Float(5.0), table.Float(5.5), 0.5, true},
		{"at closed boundary", table.Float(5.0), table.Float(5.5), 0.5, true},
		{"past boundary", table.Float(5.0), table.Float(5.5000001), 0.5, false},
		{"zero tolerance near miss", table.Float(5.0), table.Float(5.0000001), 0, false},
		{"bool vs one", table.Bool(true), table.Int(1), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b, tt.tolerance, false); got != tt.want {
				t.Errorf("Equal(%v, %v, tol=%v) = %v, want %v", tt.a, tt.b, tt.tolerance, got, tt.want)
			}
		})
	}
}

func TestEqualText(t *testing.T) {
	tests := []struct {
		name       string
		a, b       table.Value
		ignoreCase bool
		want       bool
	}{
		{"identical", table.Text("foo"), table.Text("foo"), false, true},
		{"trimmed", table.Text("  foo "), table.Text("foo"), false, true},
		{"case differs, sensitive", table.Text("Foo "), table.Text("foo"), false, false},
		{"case differs, insensitive", table.Text("Foo "), table.Text("foo"), true, true},
		{"different words", table.Text("foo"), table.Text("bar"), true, false},
		{"number vs matching text", table.Int(5), table.Text("item5"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b, 0, tt.ignoreCase); got != tt.want {
				t.Errorf("Equal(%v, %v, ignoreCase=%v) = %v, want %v", tt.a, tt.b, tt.ignoreCase, got, tt.want)
			}
		})
	}
}

// Equal must be symmetric: swapping sides never changes the verdict.
func TestEqualSymmetric(t *testing.T) {
	pairs := []struct {
		a, b table.Value
	}{
		{table.Int(5), table.Float(5.1)},
		{table.Text("Foo"), table.Text("foo")},
		{table.Null(), table.Text("x")},
		{table.Bool(true), table.Int(1)},
	}

	for _, p := range pairs {
		for _, tol := range []float64{0, 0.2} {
			for _, ic := range []bool{false, true} {
				ab := Equal(p.a, p.b, tol, ic)
				ba := Equal(p.b, p.a, tol, ic)
				if ab != ba {
					t.Errorf("Equal(%v, %v, %v, %v) = %v but swapped = %v", p.a, p.b, tol, ic, ab, ba)
				}
			}
		}
	}
}
