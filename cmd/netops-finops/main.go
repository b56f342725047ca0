package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/nocmx/netops-finops-dashboard-go/internal/adapter/driven/config"
	"github.com/nocmx/netops-finops-dashboard-go/internal/adapter/driven/export"
	"github.com/nocmx/netops-finops-dashboard-go/internal/adapter/driven/librenms"
	"github.com/nocmx/netops-finops-dashboard-go/internal/adapter/driving/cli"
	"github.com/nocmx/netops-finops-dashboard-go/internal/application/usecase"
	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/estimate"
	"github.com/nocmx/netops-finops-dashboard-go/internal/shared/types"
	"github.com/nocmx/netops-finops-dashboard-go/pkg/console"
	"github.com/nocmx/netops-finops-dashboard-go/pkg/version"
)

func main() {
	// La configuración se resuelve antes de cobra para poder construir
	// los adaptadores; el flag se pre-escanea de os.Args.
	configRepo := config.NewConfigRepository()
	cfg, err := config.LoadDefault(configRepo, configFileArg(os.Args[1:]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitLogger(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	// Sin upstream se sirve el reporte de demostración.
	if cfg.UpstreamURL == "" {
		zap.L().Warn("running without live telemetry", zap.Error(types.ErrUpstreamNotConfigured))
	}

	// Inicializa os repositórios
	telemetryRepo := librenms.NewTelemetryRepository(cfg.UpstreamURL, cfg.UpstreamToken)
	exportRepo := export.NewExportRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	reportUseCase := usecase.NewReportUseCase(
		telemetryRepo,
		exportRepo,
		consoleImpl,
		estimate.New(),
		cfg.Currency,
	)

	app := cli.NewCLIApp(version.Version, reportUseCase, cfg)
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// configFileArg extracts the --config-file/-C value from raw arguments.
func configFileArg(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--config-file" || arg == "-C":
			if i+1 < len(args) {
				return args[i+1]
			}
		case len(arg) > len("--config-file=") && arg[:len("--config-file=")] == "--config-file=":
			return arg[len("--config-file="):]
		}
	}
	return ""
}
