package shell

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"crm/internal/core"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
)

const (
	OutputTable = "table"
	OutputJSON  = "json"
)

var contactHeaders = []string{"User_ID", "Name", "Email", "Phone No."}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type renderer struct {
	out    io.Writer
	styled bool
	format string
}

func (r renderer) menu() {
	title := "--- " + menuTitle + " ---"
	if r.styled {
		title = titleStyle.Render(title)
	}
	fmt.Fprintf(r.out, "\n%s\n%s\n", title, menuBody)
}

func (r renderer) info(msg string) {
	if r.styled {
		msg = okStyle.Render(msg)
	}
	fmt.Fprintln(r.out, msg)
}

func (r renderer) problem(msg string) {
	if r.styled {
		msg = errorStyle.Render(msg)
	}
	fmt.Fprintln(r.out, msg)
}

func (r renderer) contacts(records []core.ContactRecord) error {
	if r.format == OutputJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("encode contacts: %w", err)
		}
		_, err = fmt.Fprintln(r.out, string(data))
		return err
	}

	if len(records) == 0 {
		r.info(msgNoContacts)
		return nil
	}

	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = []string{strconv.FormatInt(rec.UserID, 10), rec.Name, rec.Email, rec.Phone}
	}

	t := table.New().
		Headers(contactHeaders...).
		Rows(rows...)

	if r.styled {
		t = t.Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})
	} else {
		t = t.Border(lipgloss.ASCIIBorder())
	}

	_, err := fmt.Fprintln(r.out, t.String())
	return err
}
