package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/google/subcommands"

	"github.com/etnz/restock"
	"github.com/etnz/restock/renderer"
)

// shellCmd is the subcommand for the interactive editing session.
type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "open an interactive restocking session" }
func (*shellCmd) Usage() string {
	return `rsc shell

  Opens the supplies file for a whole editing session. Edits recompute the
  requirements table live, and nothing is written to disk until 'save'.
  Type 'help' inside the session for the commands.
`
}

func (*shellCmd) SetFlags(_ *flag.FlagSet) {}

func (c *shellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	sh := newSession(store, s.Mode, restock.NewDebouncer(s.QuietPeriod()), os.Stdout)
	return sh.run(os.Stdin)
}

// session is the state of one interactive editing session. All edits go to
// the store's in-memory configuration, the file is only written on 'save' or
// on the exit prompt.
type session struct {
	store    *restock.Store
	mode     restock.CalcMode
	debounce *restock.Debouncer
	w        io.Writer

	selected map[restock.Weekday]bool
	override string
}

func newSession(store *restock.Store, mode restock.CalcMode, debounce *restock.Debouncer, w io.Writer) *session {
	s := &session{
		store:    store,
		mode:     mode,
		debounce: debounce,
		w:        w,
		selected: make(map[restock.Weekday]bool),
	}
	// Status messages print inline, as they happen.
	store.Messages().Notify(func(msg string) { fmt.Fprintln(w, "*", msg) })
	return s
}

// run reads commands until 'exit' or EOF.
func (s *session) run(r io.Reader) subcommands.ExitStatus {
	fmt.Fprintf(s.w, "Restocking session on %s (%s, %s). Type 'help'.\n",
		s.store.Path(), s.store.Strategy(), s.mode)

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(s.w, "rsc> ")
		if !scanner.Scan() {
			// EOF: the save prompt cannot be answered, leave without writing.
			s.debounce.Flush()
			if s.store.Config().Dirty() {
				fmt.Fprintln(s.w, "\nUnsaved changes discarded.")
			}
			return subcommands.ExitSuccess
		}

		fields := splitFields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "exit" || fields[0] == "quit" {
			s.debounce.Flush()
			if s.store.Config().Dirty() {
				fmt.Fprint(s.w, "Save changes before exit? [y/N] ")
				answer := ""
				if scanner.Scan() {
					answer = strings.TrimSpace(scanner.Text())
				}
				if strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes") {
					if err := s.store.Save(); err != nil {
						fmt.Fprintln(s.w, "Error saving:", err)
						return subcommands.ExitFailure
					}
				}
			}
			return subcommands.ExitSuccess
		}
		s.execute(fields[0], fields[1:])
	}
}

// execute runs one session command. Edits schedule a debounced
// recomputation, so a burst of edits prints a single table.
func (s *session) execute(verb string, args []string) {
	switch verb {
	case "help":
		s.help()
	case "check":
		s.check(args, true)
	case "uncheck":
		s.check(args, false)
	case "day":
		s.day(args)
	case "override":
		s.setOverride(args)
	case "add":
		s.add(args)
	case "edit":
		s.edit(args)
	case "remove":
		s.remove(args)
	case "calc":
		s.recalc()
	case "show":
		printMarkdown(s.w, renderer.ConfigurationMarkdown(s.store.Config()), s.store.Config().DarkMode())
	case "messages":
		messages := s.store.Messages()
		printMarkdown(s.w, renderer.MessagesMarkdown(messages.Latest(), messages.History(), true), s.store.Config().DarkMode())
	case "theme":
		s.theme()
	case "save":
		if err := s.store.Save(); err != nil {
			fmt.Fprintln(s.w, "Error saving:", err)
		}
	default:
		fmt.Fprintf(s.w, "Unknown command %q, type 'help'.\n", verb)
	}
}

func (s *session) help() {
	fmt.Fprint(s.w, `Session commands:
  check <day>...     select days to sum sales estimates for
  uncheck <day>...   deselect days
  day <day> <sales>  edit one day's sales estimate
  override <number>  replace the day sum entirely, no argument clears it
  add <name>         add a supply item with zero values
  edit <name> [-coef <n>] [-unit <u>] [-inventory <n>] [-supplier <s>]
  remove <name>      remove a supply item
  calc               print the requirements table now
  show               print the whole configuration
  messages           print the status message history
  theme              toggle dark mode for the next startup
  save               write the supplies file
  exit               leave, prompting if there are unsaved changes
`)
}

// recalc computes and prints the requirements table for the current
// selection. It runs debounced after edits, and immediately for 'calc'.
func (s *session) recalc() {
	config := s.store.Config()
	days := s.selectedDays()

	total, err := restock.Total(config.Estimates(), days, s.override)
	if err != nil {
		s.store.Messages().Post("Override must be a number")
		return
	}
	rows, err := restock.Recalculate(config.Estimates(), days, s.override, config.Items(), s.mode)
	if err != nil {
		s.store.Messages().Post("Override must be a number")
		return
	}

	printMarkdown(s.w, renderer.RequirementsMarkdown(rows, total, s.mode), config.DarkMode())
	s.store.Messages().Post("Calculation done")
}

// selectedDays returns the checked days in canonical weekday order.
func (s *session) selectedDays() []restock.Weekday {
	var days []restock.Weekday
	for _, d := range restock.Weekdays() {
		if s.selected[d] {
			days = append(days, d)
		}
	}
	return days
}

func (s *session) check(args []string, on bool) {
	if len(args) == 0 {
		fmt.Fprintln(s.w, "usage: check <day>...")
		return
	}
	for _, arg := range args {
		d, err := restock.ParseWeekday(arg)
		if err != nil {
			fmt.Fprintln(s.w, "Error:", err)
			continue
		}
		if on {
			s.selected[d] = true
		} else {
			delete(s.selected, d)
		}
	}
	s.debounce.Trigger(s.recalc)
}

func (s *session) day(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.w, "usage: day <day> <sales>")
		return
	}
	d, err := restock.ParseWeekday(args[0])
	if err != nil {
		fmt.Fprintln(s.w, "Error:", err)
		return
	}
	sales, err := restock.ParseQuantity(args[1])
	if err != nil {
		s.store.Messages().Postf("Invalid number for %s", d)
		return
	}
	s.store.Config().SetEstimate(d, sales)
	s.debounce.Trigger(s.recalc)
}

func (s *session) setOverride(args []string) {
	if len(args) == 0 {
		s.override = ""
	} else {
		s.override = args[0]
	}
	s.debounce.Trigger(s.recalc)
}

func (s *session) add(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.w, "usage: add <name>")
		return
	}
	name := strings.Join(args, " ")
	s.store.AddItem(name, restock.Q(0), "", "")
	s.debounce.Trigger(s.recalc)
}

func (s *session) edit(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.w, "usage: edit <name> [-coef <n>] [-unit <u>] [-inventory <n>] [-supplier <s>]")
		return
	}
	name := args[0]
	config := s.store.Config()
	item, ok := config.Items().Get(name)
	if !ok {
		s.store.Messages().Postf("No item named %q", name)
		return
	}

	rest := args[1:]
	if len(rest)%2 != 0 {
		fmt.Fprintln(s.w, "usage: edit <name> [-coef <n>] [-unit <u>] [-inventory <n>] [-supplier <s>]")
		return
	}
	for i := 0; i < len(rest); i += 2 {
		value := rest[i+1]
		switch rest[i] {
		case "-coef":
			var err error
			if item.Coefficient, err = restock.ParseQuantity(value); err != nil {
				item.Coefficient = restock.Q(0)
				s.store.Messages().Postf("Invalid coefficient for %s, reset to 0", name)
			}
		case "-inventory":
			var err error
			if item.Inventory, err = restock.ParseQuantity(value); err != nil {
				item.Inventory = restock.Q(0)
				s.store.Messages().Postf("Invalid inventory for %s, reset to 0", name)
			}
		case "-unit":
			item.Unit = value
		case "-supplier":
			item.Supplier = value
		default:
			fmt.Fprintf(s.w, "unknown field %q\n", rest[i])
			return
		}
	}

	config.PutItem(name, item)
	s.store.Messages().Postf("Updated item: %s", name)
	s.debounce.Trigger(s.recalc)
}

func (s *session) remove(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.w, "usage: remove <name>")
		return
	}
	name := strings.Join(args, " ")
	if !s.store.Config().RemoveItem(name) {
		s.store.Messages().Postf("No item named %q", name)
		return
	}
	s.store.Messages().Postf("Item %q removed", name)
	s.debounce.Trigger(s.recalc)
}

func (s *session) theme() {
	config := s.store.Config()
	dark := !config.DarkMode()
	config.SetDarkMode(dark)
	if dark {
		s.store.Messages().Post("Dark Mode enabled for next startup.")
	} else {
		s.store.Messages().Post("Dark Mode disabled for next startup.")
	}
}

// splitFields splits a command line into fields, honoring double quotes so
// item names may contain spaces.
func splitFields(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false
	hasField := false
	flush := func() {
		if hasField || current.Len() > 0 {
			fields = append(fields, current.String())
		}
		current.Reset()
		hasField = false
	}
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			hasField = true
		case unicode.IsSpace(r) && !inQuotes:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return fields
}
