package cli

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nocmx/netops-finops-dashboard-go/internal/adapter/driving/httpapi"
	"github.com/nocmx/netops-finops-dashboard-go/internal/application/usecase"
	"github.com/nocmx/netops-finops-dashboard-go/internal/shared/types"
	"github.com/nocmx/netops-finops-dashboard-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	reportUseCase *usecase.ReportUseCase
	cfg           *types.Config
	version       string
}

// NewCLIApp cria uma nova aplicação CLI. Os valores del archivo de
// configuración sirven como defaults de los flags.
func NewCLIApp(versionStr string, reportUseCase *usecase.ReportUseCase, cfg *types.Config) *CLIApp {
	app := &CLIApp{
		reportUseCase: reportUseCase,
		cfg:           cfg,
		version:       versionStr,
	}

	rootCmd := &cobra.Command{
		Use:     "netops-finops",
		Short:   "NetOps FinOps Dashboard CLI",
		Version: version.FormatVersion(),
		RunE:    app.runCommand,
	}
	rootCmd.SetVersionTemplate(`{{printf "NetOps FinOps Dashboard version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	defaultPeriod := cfg.Period
	if defaultPeriod == "" {
		defaultPeriod = "1m"
	}
	rootCmd.PersistentFlags().StringP("period", "P", defaultPeriod, "Reporting period: 1d, 3d, 1w, 1m, 3m, 6m, 1y")
	rootCmd.PersistentFlags().StringSliceP("plaza", "z", nil, "Plazas to include (comma-separated; default: all known plazas)")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the financial report over HTTP",
		RunE:  app.runServe,
	}
	serveCmd.Flags().String("addr", "", "Listen address (default from config)")
	rootCmd.AddCommand(serveCmd)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	period, _ := app.rootCmd.Flags().GetString("period")
	plazas, _ := app.rootCmd.Flags().GetStringSlice("plaza")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")

	if len(plazas) == 0 {
		plazas = app.cfg.Plazas
	}
	if reportName == "" {
		reportName = app.cfg.ReportName
	}
	if dir == "" {
		dir = app.cfg.Dir
	}

	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	return &types.CLIArgs{
		ConfigFile: configFile,
		Period:     period,
		Plazas:     plazas,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
	}, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner()

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	return app.reportUseCase.RunDashboard(cmd.Context(), cliArgs)
}

// runServe levanta el servidor HTTP hasta recibir SIGINT/SIGTERM.
func (app *CLIApp) runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = app.cfg.ListenAddr
	}

	handler := httpapi.NewHandler(app.reportUseCase, app.cfg.Plazas)
	server := httpapi.NewServer(addr, handler)
	return server.Run(ctx)
}
