package font

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteGo writes Go source declaring r as a Packed table named name in
// package pkg. The output is what cmd/fontgen produces.
func WriteGo[C Column](w io.Writer, pkg, name string, r Reader[C]) error {
	if err := Validate(r); err != nil {
		return err
	}
	p := Pack(r)
	typ := fmt.Sprintf("uint%d", Bits[C]())
	size := p.Width * Bits[C]() / 8

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// Code generated by fontgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(bw, "package %s\n\n", pkg)
	fmt.Fprintf(bw, "import \"github.com/flavioheleno/ssd1306text/font\"\n\n")
	fmt.Fprintf(bw, "// %s is a %dx%d font table.\n", name, p.Width, p.Height)
	fmt.Fprintf(bw, "var %s font.Reader[%s] = &font.Packed[%s]{\n", name, typ, typ)
	fmt.Fprintf(bw, "\tWidth:  %d,\n", p.Width)
	fmt.Fprintf(bw, "\tHeight: %d,\n", p.Height)
	fmt.Fprintf(bw, "\tData:   \"\" +\n")

	n := p.Len()
	for g := 0; g < n; g++ {
		var sb strings.Builder
		for _, b := range []byte(p.Data[g*size : (g+1)*size]) {
			fmt.Fprintf(&sb, "\\x%02x", b)
		}
		sep := " +"
		if g == n-1 {
			sep = ","
		}
		fmt.Fprintf(bw, "\t\t\"%s\"%s // %q\n", sb.String(), sep, rune(First+g))
	}
	if n == 0 {
		fmt.Fprintf(bw, "\t\t\"\",\n")
	}
	fmt.Fprintf(bw, "}\n")
	return bw.Flush()
}
