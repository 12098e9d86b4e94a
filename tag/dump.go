package tag

import (
	"fmt"
	"strings"
)

// String renders a human-readable tree dump of t. Intended for debugging,
// not as a wire format.
func (t Tag) String() string {
	var b strings.Builder
	t.dump(&b, 0)

	return b.String()
}

func (t Tag) dump(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)

	switch t.id {
	case IDByte:
		v, _ := t.AsByte()
		fmt.Fprintf(b, "Byte(%d)", v)
	case IDShort:
		v, _ := t.AsShort()
		fmt.Fprintf(b, "Short(%d)", v)
	case IDInt:
		v, _ := t.AsInt()
		fmt.Fprintf(b, "Int(%d)", v)
	case IDLong:
		v, _ := t.AsLong()
		fmt.Fprintf(b, "Long(%d)", v)
	case IDFloat:
		v, _ := t.AsFloat()
		fmt.Fprintf(b, "Float(%v)", v)
	case IDDouble:
		v, _ := t.AsDouble()
		fmt.Fprintf(b, "Double(%v)", v)
	case IDByteArray:
		v, _ := t.AsByteArray()
		fmt.Fprintf(b, "ByteArray[%d]", len(v))
	case IDString:
		v, _ := t.AsString()
		fmt.Fprintf(b, "String(%q)", v)
	case IDIntArray:
		v, _ := t.AsIntArray()
		fmt.Fprintf(b, "IntArray[%d]", len(v))
	case IDLongArray:
		v, _ := t.AsLongArray()
		fmt.Fprintf(b, "LongArray[%d]", len(v))
	case IDList:
		list, _ := t.AsList()
		fmt.Fprintf(b, "List<%s>[%d] {\n", list.Elem, len(list.Items))

		for _, item := range list.Items {
			b.WriteString(indent + "  ")
			item.dump(b, depth+1)
			b.WriteString("\n")
		}

		fmt.Fprintf(b, "%s}", indent)
	case IDCompound:
		c, _ := t.AsCompound()
		fmt.Fprintf(b, "Compound {\n")

		for k, v := range c.All() {
			fmt.Fprintf(b, "%s  %q: ", indent, k)
			v.dump(b, depth+1)
			b.WriteString("\n")
		}

		fmt.Fprintf(b, "%s}", indent)
	default:
		fmt.Fprintf(b, "End")
	}
}
