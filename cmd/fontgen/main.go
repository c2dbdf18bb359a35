// Command fontgen converts a bitmap font into a Go font table for ssd1306text.
//
// The table is written as a font.Packed string constant, which stays in
// read-only memory when the program is built with TinyGo.
//
//	fontgen --bdf cherry-11-r.bdf --width 6 --height 16 --bits 16 \
//		--package fonts --name Cherry6x16 --out cherry6x16.go
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/image/font/basicfont"

	"github.com/flavioheleno/ssd1306text/font"
)

// faces are the fonts available without a BDF file.
var faces = map[string]*basicfont.Face{
	"basic7x13": basicfont.Face7x13,
}

type config struct {
	bdfPath string
	face    string
	width   int
	height  int
	bits    int
	pkg     string
	name    string
	out     string
	preview string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		cfg      config
		showHelp bool
	)

	fs := pflag.NewFlagSet("fontgen", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&cfg.bdfPath, "bdf", "b", "", "Path to a BDF font file")
	fs.StringVarP(&cfg.face, "face", "f", "", "Built-in face (basic7x13) when no BDF file is given")
	fs.IntVarP(&cfg.width, "width", "w", 6, "Glyph width in pixels")
	fs.IntVarP(&cfg.height, "height", "H", 8, "Glyph height in pixels (multiple of 8)")
	fs.IntVar(&cfg.bits, "bits", 0, "Column size in bits: 8, 16, 32 or 64 (0=smallest fitting height)")
	fs.StringVarP(&cfg.pkg, "package", "p", "fonts", "Package of the generated file")
	fs.StringVarP(&cfg.name, "name", "n", "Font", "Name of the generated variable")
	fs.StringVarP(&cfg.out, "out", "o", "", "Output file (default: stdout)")
	fs.StringVar(&cfg.preview, "preview", "", "Print TEXT as ASCII art instead of generating code")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if showHelp {
		fmt.Fprintln(stderr, "Usage: fontgen [--bdf FILE | --face NAME] [options]")
		fs.PrintDefaults()
		return 0
	}

	if cfg.bits == 0 {
		cfg.bits = fitBits(cfg.height)
	}

	var w io.Writer = stdout
	if cfg.out != "" && cfg.preview == "" {
		f, err := os.Create(cfg.out)
		if err != nil {
			fmt.Fprintf(stderr, "Error creating output file: %v\n", err)
			return 1
		}
		defer f.Close()
		w = f
	}

	var err error
	switch cfg.bits {
	case 8:
		err = generate[uint8](w, cfg)
	case 16:
		err = generate[uint16](w, cfg)
	case 32:
		err = generate[uint32](w, cfg)
	case 64:
		err = generate[uint64](w, cfg)
	default:
		err = fmt.Errorf("unsupported column size %d", cfg.bits)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// fitBits returns the smallest column size holding height rows.
func fitBits(height int) int {
	for _, b := range []int{8, 16, 32} {
		if height <= b {
			return b
		}
	}
	return 64
}

func generate[C font.Column](w io.Writer, cfg config) error {
	if cfg.height%8 != 0 {
		return fmt.Errorf("glyph height %d is not a multiple of 8", cfg.height)
	}
	tbl, err := load[C](cfg)
	if err != nil {
		return err
	}
	if cfg.preview != "" {
		return preview[C](w, tbl, cfg.preview)
	}
	return font.WriteGo[C](w, cfg.pkg, cfg.name, tbl)
}

func load[C font.Column](cfg config) (*font.Table[C], error) {
	if cfg.bdfPath != "" {
		data, err := os.ReadFile(cfg.bdfPath)
		if err != nil {
			return nil, err
		}
		return font.ParseBDF[C](data, cfg.width, cfg.height)
	}
	if cfg.face == "" {
		return nil, errors.New("no font given, use --bdf or --face")
	}
	face, ok := faces[cfg.face]
	if !ok {
		return nil, fmt.Errorf("unknown face %q", cfg.face)
	}
	return font.FromFace[C](face, cfg.width, cfg.height)
}

// preview draws text with '#' for lit pixels, one glyph column plus one
// blank column per character, like the display does.
func preview[C font.Column](w io.Writer, r font.Reader[C], text string) error {
	var sb strings.Builder
	for y := 0; y < r.GlyphHeight(); y++ {
		for i := 0; i < len(text); i++ {
			g, ok := font.Index(r, text[i])
			for x := 0; x < r.GlyphWidth(); x++ {
				if ok && uint64(r.Column(g, x))>>y&1 != 0 {
					sb.WriteByte('#')
				} else {
					sb.WriteByte('.')
				}
			}
			sb.WriteByte('.')
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
