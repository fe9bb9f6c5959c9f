package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for golang.org/x/term.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

const clearSequence = "\033[H\033[2J"

// console renders centered text and reads line oriented input.
//
// Everything is printed inside a column of menuWidth characters that sits in
// the middle of a consoleWidth wide terminal.
type console struct {
	in  *bufio.Reader
	src io.Reader
	out io.Writer

	pad       string
	menuWidth int
	line      lipgloss.Style
	title     lipgloss.Style

	clear bool
	mask  bool
}

func newConsole(in io.Reader, out io.Writer, consoleWidth, menuWidth int, clearOn, maskOn bool) *console {
	margin := max((consoleWidth-menuWidth)/2, 0)
	return &console{
		in:        bufio.NewReader(in),
		src:       in,
		out:       out,
		pad:       strings.Repeat(" ", margin),
		menuWidth: menuWidth,
		line:      lipgloss.NewStyle().MarginLeft(margin),
		title:     lipgloss.NewStyle().MarginLeft(margin).Width(menuWidth).Align(lipgloss.Center),
		clear:     clearOn,
		mask:      maskOn,
	}
}

// println prints text on its own line inside the column.
func (c *console) println(text string) {
	if text == "" {
		fmt.Fprintln(c.out)
		return
	}
	fmt.Fprintln(c.out, c.line.Render(text))
}

func (c *console) heading(text string) {
	fmt.Fprintln(c.out, c.title.Render(text))
}

func (c *console) rule() {
	fmt.Fprintln(c.out, c.pad+strings.Repeat("=", c.menuWidth))
}

// prompt prints text without a newline so the cursor stays after it.
func (c *console) prompt(text string) {
	fmt.Fprint(c.out, c.pad+text)
}

// readLine returns the next input line without its line terminator. A
// partial last line is returned as is; io.EOF is returned only when nothing
// is left to read.
func (c *console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ask prints prompt and reads the answer.
func (c *console) ask(prompt string) (string, error) {
	c.prompt(prompt)
	return c.readLine()
}

// askNonEmpty is ask that skips leading whitespace, blank lines included.
func (c *console) askNonEmpty(prompt string) (string, error) {
	c.prompt(prompt)
	for {
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if line = strings.TrimLeft(line, " \t\r\v\f"); line != "" {
			return line, nil
		}
	}
}

// askSecret reads a secret, without echo when the input is a terminal.
// The returned slice should be wiped by the caller.
func (c *console) askSecret(prompt string) ([]byte, error) {
	c.prompt(prompt)

	if f, ok := c.src.(*os.File); ok && c.mask && c.in.Buffered() == 0 && isTerminal(int(f.Fd())) {
		secret, err := readPassword(int(f.Fd()))
		fmt.Fprintln(c.out)
		if err != nil {
			return nil, err
		}
		return secret, nil
	}

	line, err := c.readLine()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// pause waits for ENTER.
func (c *console) pause() error {
	c.prompt("Press ENTER to continue...")
	_, err := c.readLine()
	return err
}

func (c *console) clearScreen() {
	if c.clear {
		fmt.Fprint(c.out, clearSequence)
	}
}

// choose shows m and returns the 1-based option picked. Anything that is not
// a number in range is rejected and asked again.
func (c *console) choose(m menu) (int, error) {
	c.rule()
	c.heading(m.title)
	c.rule()
	for i, item := range m.items {
		c.println(fmt.Sprintf("%d. %s", i+1, item))
	}
	c.rule()

	n := len(m.items)
	c.prompt(fmt.Sprintf("Choose option (1-%d): ", n))
	for {
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		if opt, err := strconv.Atoi(strings.TrimSpace(line)); err == nil && opt >= 1 && opt <= n {
			return opt, nil
		}
		c.prompt(fmt.Sprintf("Invalid input. Please enter a number 1-%d: ", n))
	}
}
