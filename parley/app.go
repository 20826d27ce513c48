// Package parley resolves command-line arguments: it selects a command from
// loosely-typed input, classifies tokens, coerces raw values against declared
// parameter types, and falls back to interactive prompting when a user is
// present and the command line came up short.
package parley

import (
	"context"
	"errors"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/mazzetti/go-parley/internal/suggest"
	"github.com/mazzetti/go-parley/prompt"
	"github.com/mazzetti/go-parley/termio"
)

// exitCommand is the menu entry that leaves the interactive run loop.
const exitCommand = "exit"

// HandlerFunc is the function invoked once a command's parameters resolved.
type HandlerFunc func(*Invocation) error

// Invocation carries everything a handler needs for one command run.
type Invocation struct {
	Ctx     context.Context
	App     *App
	Command *Command
	Binding *Binding
}

// Command is one registered command: a name group, descriptive text, a
// parameter list and a handler. Immutable once registration completes.
type Command struct {
	name    string
	aliases []string
	summary string
	details string
	params  *ParamSet
	handler HandlerFunc
}

// Name returns the canonical command name.
func (c *Command) Name() string { return c.name }

// Aliases returns the registered alias names.
func (c *Command) Aliases() []string { return c.aliases }

// Summary returns the one-line description.
func (c *Command) Summary() string { return c.summary }

// Details returns the long description shown in per-command help.
func (c *Command) Details() string { return c.details }

// Params returns the command's declared parameter list.
func (c *Command) Params() *ParamSet { return c.params }

// App holds the registered commands and drives selection, resolution and
// dispatch. Build it once, register commands, then Run.
type App struct {
	commandName string
	nicename    string
	summary     string
	details     string
	version     string

	commands   []*Command
	middleware []Middleware

	io       *termio.Manager
	prompter prompt.Prompter
	log      *zap.Logger
}

// New creates an application. commandName is what users type in their shell;
// nicename is the human-readable name used in texts.
func New(commandName, nicename string) *App {
	app := &App{
		commandName: commandName,
		nicename:    nicename,
		io:          termio.New(),
		log:         zap.NewNop(),
	}
	app.registerHelpCommand()
	return app
}

// Summary sets the one-line application description.
func (a *App) Summary(summary string) *App { a.summary = summary; return a }

// Details sets the long application description shown in general help.
func (a *App) Details(details string) *App { a.details = details; return a }

// Version sets the application version and registers a version command.
func (a *App) Version(version string) *App {
	a.version = version
	a.Command("version", "Display version information for "+a.nicename).
		Handler(func(inv *Invocation) error {
			inv.App.printVersion()
			return nil
		})
	return a
}

// Logger sets the logger used for debug traces of selection and resolution.
func (a *App) Logger(log *zap.Logger) *App { a.log = log; return a }

// IO replaces the terminal IO manager, mainly for tests.
func (a *App) IO(m *termio.Manager) *App { a.io = m; return a }

// Prompter replaces the interactive prompter. Defaults to a terminal
// prompter built on the IO manager.
func (a *App) Prompter(p prompt.Prompter) *App { a.prompter = p; return a }

// Command registers a command and returns its builder.
func (a *App) Command(name, summary string) *CommandBuilder {
	cmd := &Command{
		name:    name,
		summary: summary,
		params:  NewParams(),
	}
	a.commands = append(a.commands, cmd)
	return &CommandBuilder{app: a, cmd: cmd}
}

// Commands returns the registered commands sorted by name.
func (a *App) Commands() []*Command {
	sorted := make([]*Command, len(a.commands))
	copy(sorted, a.commands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].name < sorted[j].name })
	return sorted
}

// Catalog returns the selection catalog over the registered commands.
func (a *App) Catalog() []CatalogEntry {
	commands := a.Commands()
	catalog := make([]CatalogEntry, len(commands))
	for i, cmd := range commands {
		catalog[i] = CatalogEntry{Name: cmd.name, Aliases: cmd.aliases, Summary: cmd.summary}
	}
	return catalog
}

func (a *App) findCommand(name string) *Command {
	for _, cmd := range a.commands {
		if cmd.name == name {
			return cmd
		}
	}
	return nil
}

// Run resolves and dispatches using the process arguments.
func (a *App) Run(ctx context.Context) error {
	return a.RunArgs(ctx, os.Args[1:])
}

// RunArgs resolves the invoked command from argv, resolves its parameters
// (asking interactively for anything missing when a user is present), and
// invokes the handler. Cancellation during prompting aborts the whole run.
func (a *App) RunArgs(ctx context.Context, argv []string) error {
	interactive := a.io.IsInteractive()
	pr := a.prompter
	if pr == nil {
		pr = prompt.NewTerminal(a.io)
	}
	opts := ResolveOptions{Interactive: interactive, Prompter: pr}

	catalog := a.Catalog()
	if interactive {
		// The menu offers a way out, like any good menu.
		catalog = append(catalog, CatalogEntry{Name: exitCommand, Summary: "Leave without doing anything"})
	}

	name, rest, err := ResolveCommand(catalog, argv, opts)
	if err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			pr.Warnf("Canceled")
			return err
		}
		a.log.Debug("command selection failed", zap.Error(err))
		return a.decorateSelectionError(err)
	}
	if interactive && name == exitCommand && a.findCommand(exitCommand) == nil {
		return nil
	}

	cmd := a.findCommand(name)
	a.log.Debug("command selected",
		zap.String("command", name),
		zap.Int("remaining_tokens", len(rest)))

	binding, err := ResolveParameters(cmd.params, rest, opts)
	if err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			pr.Warnf("Canceled")
			return err
		}
		var resErr *ResolutionError
		if errors.As(err, &resErr) {
			for _, problem := range resErr.Problems {
				pr.Errorf("%s", problem)
			}
		}
		a.log.Debug("parameter resolution failed", zap.Error(err))
		return err
	}

	if cmd.handler == nil {
		return nil
	}
	handler := chain(cmd.handler, a.middleware)
	return handler(&Invocation{Ctx: ctx, App: a, Command: cmd, Binding: binding})
}

// decorateSelectionError appends a did-you-mean hint to no-match selection
// failures when a near miss exists.
func (a *App) decorateSelectionError(err error) error {
	var selErr *SelectionError
	if !errors.As(err, &selErr) || selErr.Kind != ErrorKindNoMatch {
		return err
	}

	names := make([]string, 0, len(a.commands))
	for _, cmd := range a.commands {
		names = append(names, cmd.name)
		names = append(names, cmd.aliases...)
	}
	if best := suggest.FindBest(selErr.Input, names, 2); best != "" {
		selErr.Message += ". Did you mean `" + best + "`?"
	}
	return selErr
}

// CommandBuilder configures a command being registered.
type CommandBuilder struct {
	app *App
	cmd *Command
}

// Alias adds alternative names the command can be invoked by.
func (b *CommandBuilder) Alias(aliases ...string) *CommandBuilder {
	b.cmd.aliases = append(b.cmd.aliases, aliases...)
	return b
}

// Details sets the long description shown in per-command help.
func (b *CommandBuilder) Details(details string) *CommandBuilder {
	b.cmd.details = details
	return b
}

// Positional declares a positional parameter on the command.
func (b *CommandBuilder) Positional(name string, t TypeSpec) *ParamBuilder {
	return b.cmd.params.Positional(name, t)
}

// Flag declares a flag parameter on the command.
func (b *CommandBuilder) Flag(name string, t TypeSpec) *ParamBuilder {
	return b.cmd.params.Flag(name, t)
}

// Params exposes the parameter set for declaration-heavy registration.
func (b *CommandBuilder) Params() *ParamSet { return b.cmd.params }

// Handler sets the function run once parameters resolve.
func (b *CommandBuilder) Handler(fn HandlerFunc) *CommandBuilder {
	b.cmd.handler = fn
	return b
}

// App returns to the application for continued chaining.
func (b *CommandBuilder) App() *App { return b.app }
