package main

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sierra-payroll/config"
	"sierra-payroll/converter"
	"sierra-payroll/database"
	"sierra-payroll/payroll"
	"sierra-payroll/report"
	"sierra-payroll/roster"
	"sierra-payroll/service"
	"sierra-payroll/sftp"
	"sierra-payroll/sierra"
	"sierra-payroll/wbs"
)

const weekFlagLayout = "2006-01-02"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "sierra-payroll",
	Short: "Convert Sierra timesheet exports into WBS payroll workbooks",
}

var convertCmd = &cobra.Command{
	Use:   "convert <timesheet>",
	Short: "Convert a weekly timesheet into the WBS submission workbook",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

var validateCmd = &cobra.Command{
	Use:   "validate <timesheet>",
	Short: "Parse a timesheet and report what a conversion would cover",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var fetchCmd = &cobra.Command{
	Use:   "fetch [remote-file]",
	Short: "Download a timesheet from the Sierra sftp drop",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFetch,
}

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage the employee roster",
}

var rosterImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Load the roster csv pair into postgres",
	RunE:  runRosterImport,
}

var rosterListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the roster in gold master order",
	RunE:  runRosterList,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "sierra-payroll.toml", "path to the toml config file")

	convertCmd.Flags().StringP("output", "o", "", "output workbook path (default wbs_payroll_<period-end>.xlsx)")
	convertCmd.Flags().String("csv", "", "also write the table as a positional csv grid")
	convertCmd.Flags().String("pdf", "", "also write a pdf conversion summary")
	convertCmd.Flags().String("onpay", "", "also write the flat pay-item csv export")
	convertCmd.Flags().Bool("full-roster", false, "emit zero rows for roster employees missing from the input")
	convertCmd.Flags().String("week", "", "any date inside the pay week, YYYY-MM-DD (default today)")

	validateCmd.Flags().String("week", "", "any date inside the pay week, YYYY-MM-DD (default today)")

	fetchCmd.Flags().String("dir", ".", "local directory to download into")

	rosterCmd.AddCommand(rosterImportCmd)
	rosterCmd.AddCommand(rosterListCmd)

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(rosterCmd)
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// loadIndex builds the roster index from whichever source the config names.
func loadIndex(cfg *config.Config) (*roster.Index, error) {
	switch cfg.Roster.Source {
	case "", "csv":
		return roster.Load(cfg.Roster.OrderPath, cfg.Roster.RosterPath)
	case "postgres":
		if err := database.Setup(cfg.Database.DSN); err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		db := database.GetDB()
		defer database.ReleaseDB()

		return roster.NewStore(db).LoadIndex()
	default:
		return nil, fmt.Errorf("unknown roster source %q", cfg.Roster.Source)
	}
}

func weekAnchor(cmd *cobra.Command) (time.Time, error) {
	raw, _ := cmd.Flags().GetString("week")
	if raw == "" {
		return time.Now().UTC(), nil
	}

	anchor, err := time.Parse(weekFlagLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --week value %q: %w", raw, err)
	}

	return anchor, nil
}

func buildEngine(cfg *config.Config, anchor time.Time, fullRoster bool) (*converter.Engine, error) {
	index, err := loadIndex(cfg)
	if err != nil {
		return nil, err
	}

	periodEnd := service.PeriodEnd(anchor)

	return &converter.Engine{
		Index: index,
		Meta: wbs.Meta{
			ClientID:   cfg.Client.ID,
			ClientName: cfg.Client.Name,
			PeriodEnd:  periodEnd,
			ReportDue:  service.ReportDue(periodEnd),
			CheckDate:  service.CheckDate(periodEnd),
			RunTime:    time.Now(),
		},
		Options: wbs.Options{IncludeFullRoster: fullRoster},
		Parser:  sierra.Parser{WeekStart: service.WeekStart(anchor)},
	}, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	anchor, err := weekAnchor(cmd)
	if err != nil {
		return err
	}

	fullRoster, _ := cmd.Flags().GetBool("full-roster")
	if cfg.Output.IncludeFullRoster {
		fullRoster = true
	}

	engine, err := buildEngine(cfg, anchor, fullRoster)
	if err != nil {
		return err
	}

	input := args[0]
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	result, err := engine.Convert(filepath.Base(input), data)
	if err != nil {
		return err
	}

	for _, diag := range result.Diagnostics {
		fmt.Fprintln(os.Stderr, diag.String())
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = fmt.Sprintf("wbs_payroll_%s.xlsx", engine.Meta.PeriodEnd.Format(weekFlagLayout))
	}

	workbook, err := wbs.WriteXLSX(result.Table)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, workbook, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	log.Infof("wrote %s", output)

	if csvPath, _ := cmd.Flags().GetString("csv"); csvPath != "" {
		grid, err := wbs.WriteCSV(result.Table)
		if err != nil {
			return err
		}
		if err := os.WriteFile(csvPath, grid, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", csvPath, err)
		}
		log.Infof("wrote %s", csvPath)
	}

	if pdfPath, _ := cmd.Flags().GetString("pdf"); pdfPath != "" {
		if err := report.WritePDF(result, engine.Meta, pdfPath); err != nil {
			return err
		}
		log.Infof("wrote %s", pdfPath)
	}

	if onpayPath, _ := cmd.Flags().GetString("onpay"); onpayPath != "" {
		if err := writeOnpay(onpayPath, result); err != nil {
			return err
		}
		log.Infof("wrote %s", onpayPath)
	}

	return nil
}

func writeOnpay(path string, result *converter.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	return payroll.ExportEntries(result.Resolved).ToCSV(file)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	anchor, err := weekAnchor(cmd)
	if err != nil {
		return err
	}

	engine, err := buildEngine(cfg, anchor, false)
	if err != nil {
		return err
	}

	input := args[0]
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	summary, diagnostics, err := engine.Validate(filepath.Base(input), data)
	if err != nil {
		return err
	}

	for _, diag := range diagnostics {
		fmt.Fprintln(os.Stderr, diag.String())
	}

	fmt.Printf("employees: %d\nentries: %d\ntotal hours: %.2f\ndiagnostics: %d\n",
		summary.Employees, summary.Entries, summary.TotalHours, len(diagnostics))

	return nil
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.SFTP.Server == "" {
		return fmt.Errorf("sftp server not configured")
	}

	key, err := os.ReadFile(cfg.SFTP.PrivateKeyPath)
	if err != nil {
		return fmt.Errorf("reading private key: %w", err)
	}

	client, err := sftp.New(sftp.Config{
		Username:   cfg.SFTP.Username,
		PrivateKey: string(key),
		Server:     cfg.SFTP.Server,
		Timeout:    cfg.SFTP.Timeout(),
	})
	if err != nil {
		return err
	}
	defer client.Close()

	var remoteName string
	if len(args) == 1 {
		remoteName = args[0]
	} else {
		remoteName, err = client.LatestExport(cfg.SFTP.RemoteDir)
		if err != nil {
			return err
		}
	}

	remote, err := client.Download(path.Join(cfg.SFTP.RemoteDir, remoteName))
	if err != nil {
		return err
	}
	defer remote.Close()

	dir, _ := cmd.Flags().GetString("dir")
	localPath := filepath.Join(dir, remoteName)

	local, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", localPath, err)
	}
	defer local.Close()

	if _, err := io.Copy(local, remote); err != nil {
		return fmt.Errorf("downloading %s: %w", remoteName, err)
	}

	log.Infof("downloaded %s", localPath)

	return nil
}

func runRosterImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	index, err := roster.Load(cfg.Roster.OrderPath, cfg.Roster.RosterPath)
	if err != nil {
		return err
	}

	if err := database.Setup(cfg.Database.DSN); err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}
	db := database.GetDB()
	defer database.ReleaseDB()

	store := roster.NewStore(db)
	if err := store.Migrate(); err != nil {
		return fmt.Errorf("migrating roster table: %w", err)
	}
	if err := store.Import(index.Entries()); err != nil {
		return err
	}

	log.Infof("imported %d roster entries", index.Len())

	return nil
}

func runRosterList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	index, err := loadIndex(cfg)
	if err != nil {
		return err
	}

	for _, entry := range index.Entries() {
		fields := []string{
			entry.EmployeeNumber,
			entry.CanonicalName,
			entry.Status,
			entry.Type,
			entry.Department,
		}
		fmt.Println(strings.Join(fields, "\t"))
	}

	return nil
}
