package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Palette holds ANSI escape sequences. A disabled palette renders every
// sequence as an empty string, which keeps call sites unconditional.
type Palette struct {
	Reset  string
	Red    string
	Green  string
	Yellow string
	Blue   string
	Cyan   string
}

func NewPalette(enabled bool) Palette {
	if !enabled {
		return Palette{}
	}
	return Palette{
		Reset:  "\033[0m",
		Red:    "\033[31m",
		Green:  "\033[32m",
		Yellow: "\033[33m",
		Blue:   "\033[34m",
		Cyan:   "\033[36m",
	}
}

// Console is the line-oriented prompt/display surface: prompt text out,
// one line of text in.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	Colors Palette
}

func NewConsole(in io.Reader, out io.Writer, colors Palette) *Console {
	return &Console{in: bufio.NewReader(in), out: out, Colors: colors}
}

// Prompt prints the prompt and reads a single trimmed line. An input
// error (including EOF) propagates so menu loops can unwind.
func (c *Console) Prompt(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.out, c.Colors.Red+msg+c.Colors.Reset)
}

func (c *Console) Info(msg string) {
	fmt.Fprintln(c.out, c.Colors.Cyan+msg+c.Colors.Reset)
}

func (c *Console) Success(msg string) {
	fmt.Fprintln(c.out, c.Colors.Green+msg+c.Colors.Reset)
}
