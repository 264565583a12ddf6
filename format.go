package parmat

import (
	"fmt"
	"strings"
)

// String renders m as brace-nested rows: a 2×2 matrix [[a,b],[c,d]] becomes
// "{{a b}, {c d}}".
func (m *Matrix[T]) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	m.writeTo(&sb)
	return sb.String()
}

// GoString is the %#v form and includes the shape.
func (m *Matrix[T]) GoString() string {
	if m == nil {
		return "(*parmat.Matrix)(nil)"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Matrix { rows: %d, cols: %d, data: ", m.rows, m.cols)
	m.writeTo(&sb)
	sb.WriteString(" }")
	return sb.String()
}

func (m *Matrix[T]) writeTo(sb *strings.Builder) {
	sb.WriteByte('{')
	for i := range m.rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('{')
		for j := range m.cols {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(sb, m.data[i*m.cols+j])
		}
		sb.WriteByte('}')
	}
	sb.WriteByte('}')
}
