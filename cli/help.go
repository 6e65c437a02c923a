package cli

import (
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/saylorsolutions/clif/schema"
	flag "github.com/spf13/pflag"
	"io"
	"strings"
)

// CommandSummary is the listing entry for a [Command] in help output.
type CommandSummary struct {
	Name        string
	Aliases     []string
	Description string
}

// HelpDoc is everything needed to render help for a [Program] or one of its commands.
type HelpDoc struct {
	Name        string // Name is the full invocation path, like "my-cli deploy".
	Description string
	Usage       string
	Version     string
	Options     []schema.Descriptor
	Commands    []CommandSummary
}

// Renderer writes a formatted [HelpDoc].
type Renderer interface {
	Render(w io.Writer, doc HelpDoc) error
}

var _ Renderer = (*TextRenderer)(nil)

// TextRenderer is the default [Renderer].
type TextRenderer struct {
	Width int  // Width wraps flag descriptions to this many columns, if greater than 0.
	Color bool // Color enables styled section headings.
}

func (r *TextRenderer) heading(text string) string {
	if !r.Color {
		return text
	}
	c := color.New(color.Bold)
	c.EnableColor()
	return c.Sprint(text)
}

func (r *TextRenderer) Render(w io.Writer, doc HelpDoc) error {
	var buf strings.Builder
	title := doc.Name
	if len(doc.Version) > 0 {
		title += " " + doc.Version
	}
	buf.WriteString(title + "\n")
	if len(doc.Description) > 0 {
		buf.WriteString(doc.Description + "\n")
	}

	usage := doc.Usage
	if len(usage) == 0 {
		usage = "[FLAGS] [ARGS...]"
		if len(doc.Commands) > 0 {
			usage = "[COMMAND] " + usage
		}
	}
	buf.WriteString("\n" + r.heading("USAGE:") + "\n")
	buf.WriteString(doc.Name + " " + usage + "\n")

	if len(doc.Options) > 0 {
		buf.WriteString("\n" + r.heading("FLAGS") + "\n")
		buf.WriteString(FlagUsages(doc.Options, r.Width))
	}
	if len(doc.Commands) > 0 {
		buf.WriteString("\n" + r.heading("COMMANDS") + "\n")
		buf.WriteString(CommandUsages(doc.Commands))
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

// placeholder only describes a flag to pflag for usage output, it's never parsed.
type placeholder string

func (p placeholder) String() string     { return "" }
func (p placeholder) Set(_ string) error { return nil }
func (p placeholder) Type() string       { return string(p) }

// FlagUsages formats descriptors as a flag table in declaration order, wrapped to width columns if width is greater than 0.
func FlagUsages(descriptors []schema.Descriptor, width int) string {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.SortFlags = false
	for _, d := range descriptors {
		if fs.Lookup(d.Name) != nil {
			continue
		}
		shorthand := d.Alias()
		if len(shorthand) != 1 || fs.ShorthandLookup(shorthand) != nil {
			shorthand = ""
		}
		usage := d.Description()
		if d.Required() {
			usage += " (required)"
		}
		if env := d.Env(); len(env) > 0 {
			usage += " [$" + env + "]"
		}
		usage = strings.TrimSpace(usage)

		var typeName string
		switch d.Kind() {
		case schema.Boolean:
			typeName = "bool"
		case schema.Number:
			typeName = "int"
		default:
			typeName = "string"
		}
		if d.Kind() != schema.Boolean && len(d.Usage()) > 0 {
			typeName = d.Usage()
		}
		f := fs.VarPF(placeholder(typeName), d.Name, shorthand, usage)
		if d.Kind() == schema.Boolean {
			f.NoOptDefVal = "true"
		}
	}
	return fs.FlagUsagesWrapped(width)
}

// CommandUsages formats a command listing, with aliases following each name.
func CommandUsages(cmds []CommandSummary) string {
	var (
		buf    strings.Builder
		labels = make([]string, len(cmds))
		maxLen int
	)
	for i, cmd := range cmds {
		labels[i] = strings.Join(append([]string{cmd.Name}, cmd.Aliases...), ", ")
		if l := runewidth.StringWidth(labels[i]); l > maxLen {
			maxLen = l
		}
	}
	for i, cmd := range cmds {
		line := "  " + runewidth.FillRight(labels[i], maxLen) + "   " + cmd.Description
		buf.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	return buf.String()
}

func (p *Program) helpRenderer() Renderer {
	if p.renderer != nil {
		return p.renderer
	}
	return &TextRenderer{Width: p.printer.Width(), Color: p.printer.IsTerminal()}
}

func (p *Program) summaries() []CommandSummary {
	summaries := make([]CommandSummary, len(p.commands))
	for i, reg := range p.commands {
		summaries[i] = CommandSummary{Name: reg.Name, Aliases: reg.Aliases, Description: reg.Description}
	}
	return summaries
}

// ProgramHelp builds the top level [HelpDoc].
// Flags are those of the default command, if there is one.
func (p *Program) ProgramHelp() HelpDoc {
	doc := HelpDoc{
		Name:        p.name,
		Description: p.description,
		Usage:       p.usage,
		Version:     p.version,
		Commands:    p.summaries(),
	}
	if p.fallback != nil {
		doc.Options = p.fallback.descriptors
		if len(doc.Description) == 0 {
			doc.Description = p.fallback.Description
		}
		if len(doc.Usage) == 0 {
			doc.Usage = p.fallback.Usage
		}
	}
	return doc
}

// CommandHelp builds the [HelpDoc] for a named command.
func (p *Program) CommandHelp(name string) (HelpDoc, bool) {
	reg, ok := p.byName[name]
	if !ok {
		return HelpDoc{}, false
	}
	return p.commandHelp(reg), true
}

func (p *Program) commandHelp(reg *registered) HelpDoc {
	return HelpDoc{
		Name:        p.name + " " + reg.Name,
		Description: reg.Description,
		Usage:       reg.Usage,
		Options:     reg.descriptors,
	}
}

// PrintHelp renders the top level help to the [Printer].
func (p *Program) PrintHelp() error {
	return p.helpRenderer().Render(p.printer.Writer(), p.ProgramHelp())
}

func (p *Program) printHelp(reg *registered) error {
	if reg.IsDefault() {
		return p.PrintHelp()
	}
	return p.helpRenderer().Render(p.printer.Writer(), p.commandHelp(reg))
}
