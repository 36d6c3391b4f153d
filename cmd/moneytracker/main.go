// moneytracker is the command-line front end of the tracker. Every command
// runs against the durable store; state survives between invocations
// through the persisted session keys.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"moneytracker/internal/cli"
	"moneytracker/internal/core"
	"moneytracker/internal/log"
	"moneytracker/internal/session"
	"moneytracker/internal/storage"
)

const usage = `Usage: moneytracker <command> [args]

Users:
  user create <name> <balance>    create a profile
  user rename <new-name>          rename the selected profile
  user delete                     delete the selected profile
  user main <name>                set the main profile
  user select <name>              switch profiles
  user list                       list profiles

Transactions:
  tx add <YYYY-MM> <income|expense> <day> <item> <amount> [tag]
  tx edit <YYYY-MM> <id> <income|expense> <day> <item> <amount> [tag]
  tx rm <YYYY-MM> <id>
  tx list <YYYY-MM>

Templates:
  template set <income|expense> <item> <amount> [tag]
  template rm <item>
  template list

Tags:
  tag set <name> <color>
  tag rename <old> <new> <color>
  tag rm <name>
  tag list

Reporting:
  summary <YYYY-MM> [tag]         totals for a month
  year <YYYY> [tag]               totals for a year
  balance                         current balance

Porting:
  export                          write the artifact file
  import [-overwrite] <file>      restore from an artifact file
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"))
	cfg := cli.LoadAndValidateConfig(logger)
	logger = cli.SetupLogger(cfg.LogLevel)
	result := cli.InitBackend(logger, cfg)
	defer func() {
		if result.Cleanup != nil {
			if err := result.Cleanup(); err != nil {
				logger.Error("Failed to close backend", log.FieldError, err)
			}
		}
	}()

	ctx := context.Background()
	repo := storage.NewRepository(result.Store)
	s, err := session.New(ctx, repo, cfg, logger, session.WithAlert(func(msg string) {
		fmt.Fprintln(os.Stderr, msg)
	}))
	if err != nil {
		logger.Error("Failed to start session", log.FieldError, err)
		return 1
	}

	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	if err := dispatch(ctx, s, args); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			return 2
		}
		return 1
	}
	return 0
}

var errUsage = errors.New("usage")

func dispatch(ctx context.Context, s *session.Session, args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "user":
		return userCmd(ctx, s, rest)
	case "tx":
		return txCmd(ctx, s, rest)
	case "template":
		return templateCmd(ctx, s, rest)
	case "tag":
		return tagCmd(ctx, s, rest)
	case "summary":
		return summaryCmd(s, rest)
	case "year":
		return yearCmd(s, rest)
	case "balance":
		return balanceCmd(s)
	case "export":
		return exportCmd(ctx, s)
	case "import":
		return importCmd(ctx, s, rest)
	default:
		return errUsage
	}
}

func userCmd(ctx context.Context, s *session.Session, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "create":
		if len(args) != 3 {
			return errUsage
		}
		balance, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, "enter a valid balance")
			return err
		}
		return s.CreateUser(ctx, args[1], balance)
	case "rename":
		if len(args) != 2 {
			return errUsage
		}
		return s.RenameUser(ctx, args[1])
	case "delete":
		return s.DeleteUser(ctx)
	case "main":
		if len(args) != 2 {
			return errUsage
		}
		return s.SetMainUser(ctx, args[1])
	case "select":
		if len(args) != 2 {
			return errUsage
		}
		return s.SelectUser(ctx, args[1])
	case "list":
		for _, u := range s.ListUsers() {
			marker := " "
			if u.Name == s.MainUser() {
				marker = "*"
			}
			fmt.Printf("%s %-8s %s\n", marker, u.Name, core.FormatAmount(u.Balance))
		}
		return nil
	default:
		return errUsage
	}
}

func txCmd(ctx context.Context, s *session.Session, args []string) error {
	if len(args) < 2 {
		return errUsage
	}
	year, month, err := parseMonthKey(args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "enter the month as YYYY-MM")
		return err
	}
	switch args[0] {
	case "add":
		if len(args) < 6 || len(args) > 7 {
			return errUsage
		}
		d, err := parseTxData(args[2:])
		if err != nil {
			return err
		}
		_, err = s.CreateTransaction(ctx, year, month, d)
		return err
	case "edit":
		if len(args) < 7 || len(args) > 8 {
			return errUsage
		}
		id, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return errUsage
		}
		d, err := parseTxData(args[3:])
		if err != nil {
			return err
		}
		return s.UpdateTransaction(ctx, year, month, id, d)
	case "rm":
		if len(args) != 3 {
			return errUsage
		}
		id, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return errUsage
		}
		return s.DeleteTransaction(ctx, year, month, id)
	case "list":
		for _, tx := range s.Transactions(year, month) {
			fmt.Printf("%d  %04d-%02d-%02d  %-7s  %-12s  %8s  %s\n",
				tx.ID, year, month, tx.Date, tx.Type, tx.Item, core.FormatAmount(tx.Amount), tx.Tag)
		}
		return nil
	default:
		return errUsage
	}
}

func parseTxData(args []string) (session.TransactionData, error) {
	day, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "enter a valid day of month")
		return session.TransactionData{}, err
	}
	d := session.TransactionData{
		Type:   core.TxType(args[0]),
		Date:   day,
		Item:   args[2],
		Amount: args[3],
	}
	if len(args) > 4 {
		d.Tag = args[4]
	}
	return d, nil
}

func templateCmd(ctx context.Context, s *session.Session, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "set":
		if len(args) < 4 || len(args) > 5 {
			return errUsage
		}
		d := session.TemplateData{Type: core.TxType(args[1]), Item: args[2], Amount: args[3]}
		if len(args) > 4 {
			d.Tag = args[4]
		}
		oldItem := ""
		if s.HasTemplate(d.Item) {
			oldItem = d.Item
		}
		return s.UpsertTemplate(ctx, d, oldItem)
	case "rm":
		if len(args) != 2 {
			return errUsage
		}
		return s.DeleteTemplate(ctx, args[1])
	case "list":
		for _, tpl := range s.ListTemplates() {
			fmt.Printf("%-12s  %-7s  %8s  %s\n", tpl.Item, tpl.Type, core.FormatAmount(tpl.Amount), tpl.Tag)
		}
		return nil
	default:
		return errUsage
	}
}

func tagCmd(ctx context.Context, s *session.Session, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "set":
		if len(args) != 3 {
			return errUsage
		}
		return s.UpsertTag(ctx, session.TagData{Name: args[1], Color: args[2]}, "")
	case "rename":
		if len(args) != 4 {
			return errUsage
		}
		return s.UpsertTag(ctx, session.TagData{Name: args[2], Color: args[3]}, args[1])
	case "rm":
		if len(args) != 2 {
			return errUsage
		}
		return s.DeleteTag(ctx, args[1])
	case "list":
		for _, tag := range s.ListTags() {
			fmt.Printf("%-4s  %s\n", tag.Name, tag.Color)
		}
		return nil
	default:
		return errUsage
	}
}

func summaryCmd(s *session.Session, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	year, month, err := parseMonthKey(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "enter the month as YYYY-MM")
		return err
	}
	if err := s.SelectMonth(year, month); err != nil {
		return err
	}
	filter := ""
	if len(args) == 2 {
		filter = args[1]
	}
	printTotals(s.Aggregates(core.WindowSelectedMonth, filter))
	return nil
}

func yearCmd(s *session.Session, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return errUsage
	}
	if err := s.SelectMonth(year, 1); err != nil {
		return err
	}
	filter := ""
	if len(args) == 2 {
		filter = args[1]
	}
	printTotals(s.Aggregates(core.WindowSelectedYear, filter))
	return nil
}

func printTotals(t core.Totals) {
	fmt.Printf("income   %s\nexpense  %s\nbalance  %s\n",
		core.FormatAmount(t.Income), core.FormatAmount(t.Expense), core.FormatAmount(t.Balance))
}

func balanceCmd(s *session.Session) error {
	balance, err := s.CurrentBalance()
	if err != nil {
		return err
	}
	fmt.Println(core.FormatAmount(balance))
	return nil
}

func exportCmd(ctx context.Context, s *session.Session) error {
	filename, artifact, err := s.Export(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, []byte(artifact), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "could not write the export file")
		return err
	}
	fmt.Println(filename)
	return nil
}

func importCmd(ctx context.Context, s *session.Session, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	overwrite := fs.Bool("overwrite", false, "replace existing data without asking")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		return errUsage
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not read the import file")
		return err
	}
	artifact := string(data)

	err = s.Import(ctx, artifact, *overwrite)
	if errors.Is(err, core.ErrOverwriteRequired) && confirm("Replace the existing data? [y/N] ") {
		err = s.Import(ctx, artifact, true)
	}
	return err
}

func confirm(prompt string) bool {
	fmt.Fprint(os.Stderr, prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func parseMonthKey(key string) (year, month int, err error) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid month key %q", key)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	if _, err := time.Parse("2006-01", fmt.Sprintf("%04d-%02d", year, month)); err != nil {
		return 0, 0, err
	}
	return year, month, nil
}
