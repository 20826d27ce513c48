package parley

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mazzetti/go-parley/internal/match"
)

// helpStyles bundles the text styles used by help output. Styling collapses
// to plain text when color is unsupported.
type helpStyles struct {
	heading lipgloss.Style
	name    lipgloss.Style
	dim     lipgloss.Style
}

func (a *App) styles() helpStyles {
	if !a.io.SupportsColor() {
		plain := lipgloss.NewStyle()
		return helpStyles{heading: plain, name: plain, dim: plain}
	}
	return helpStyles{
		heading: lipgloss.NewStyle().Bold(true),
		name:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		dim:     lipgloss.NewStyle().Faint(true),
	}
}

// registerHelpCommand adds the built-in help command. With no argument it
// shows general help; given a command name it shows that command's help,
// resolving the name with the usual leeway.
func (a *App) registerHelpCommand() {
	a.Command("help", "Display help for a command").
		Details("If no command is provided, shows general help for "+a.nicename+
			". If a command is provided, shows help for that command instead.").
		Handler(func(inv *Invocation) error {
			inv.App.printHelp(inv.Binding.String("command", ""))
			return nil
		}).
		Positional("command", Optional(String())).Default(nil)
}

func (a *App) printVersion() {
	fmt.Fprintf(a.io.Out(), "%s %s\n", a.nicename, a.version)
}

// printHelp renders general help, or per-command help when requested names
// a registered command.
func (a *App) printHelp(requested string) {
	if requested != "" {
		groups := make([]match.Group, 0, len(a.commands))
		commands := a.Commands()
		for _, cmd := range commands {
			groups = append(groups, match.NewGroup(cmd.name, cmd.aliases...))
		}

		result := match.Choose(groups, requested)
		switch result.Outcome {
		case match.Exact, match.Unique:
			cmd := commands[result.Index]
			if requested != cmd.name {
				fmt.Fprintf(a.io.Err(),
					"Showing help for command `%s`, since there is no command named `%s`\n\n",
					cmd.name, requested)
			}
			a.printCommandHelp(cmd)
			return
		case match.Ambiguous:
			fmt.Fprintf(a.io.Err(), "`%s` is ambiguous. It could refer to %s\n\n",
				requested, commaList(result.Matched, "or", "`"))
		default:
			fmt.Fprintf(a.io.Err(), "`%s` is not a valid command.\n\n", requested)
		}
	}

	st := a.styles()
	out := a.io.Out()

	if a.summary != "" {
		fmt.Fprintln(out, a.summary)
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "%s %s <command> [options ...]\n\n", st.dim.Render("Usage:"), a.commandName)
	fmt.Fprintln(out, "Available commands are:")

	commands := a.Commands()
	width := 0
	for _, cmd := range commands {
		if len(cmd.name) > width {
			width = len(cmd.name)
		}
	}
	for _, cmd := range commands {
		line := "  " + st.name.Render(pad(cmd.name, width))
		if cmd.summary != "" {
			line += "  ...  " + cmd.summary
		}
		fmt.Fprintln(out, line)
	}

	if a.details != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, a.details)
	}
}

// printCommandHelp renders usage and the parameter table for one command.
func (a *App) printCommandHelp(cmd *Command) {
	st := a.styles()
	out := a.io.Out()

	if cmd.summary != "" {
		fmt.Fprintf(out, "%s  ...  %s\n\n", st.heading.Render(cmd.name), cmd.summary)
	} else {
		fmt.Fprintf(out, "%s\n\n", st.heading.Render(cmd.name))
	}

	fmt.Fprintf(out, "%s %s %s%s\n", st.dim.Render("Usage:"),
		a.commandName, cmd.name, usageLine(cmd.params))

	if cmd.params.Len() > 0 {
		fmt.Fprintln(out)
		width := 0
		for _, p := range cmd.params.All() {
			if len(p.Name) > width {
				width = len(p.Name)
			}
		}
		for _, p := range cmd.params.All() {
			line := "  " + st.name.Render(pad(p.Name, width))
			if p.HasDefault {
				line += "  " + st.dim.Render(fmt.Sprintf("(defaults to %v)", p.Default))
			}
			fmt.Fprintln(out, line)
		}
	}

	if cmd.details != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, cmd.details)
	}
}

// usageLine renders the parameter summary that follows the command name:
// required positionals as <name>, flags as --name or --name <value>, and
// optional parameters in brackets.
func usageLine(params *ParamSet) string {
	var b strings.Builder
	for _, p := range params.All() {
		var piece string
		switch {
		case !p.Flag && !p.HasDefault:
			piece = "<" + p.Name + ">"
		case p.Flag && p.Type.isBool():
			piece = "--" + p.Name
		case p.Flag:
			piece = "--" + p.Name + " <value>"
		default:
			piece = p.Name
		}
		if p.HasDefault {
			piece = "[" + piece + "]"
		}
		if p.Variadic {
			piece += "..."
		}
		b.WriteString(" ")
		b.WriteString(piece)
	}
	return b.String()
}

func pad(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
