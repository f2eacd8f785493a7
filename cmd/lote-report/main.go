// Command lote-report prints the UPSTREAM summary tables for one Lote.
//
// With -lote the report is rendered once; without it the command prompts on
// stdin for a Lote and renders a report for every line read until EOF.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"

	"upstreamcli/internal/app"
	"upstreamcli/internal/config"
	apperrors "upstreamcli/internal/errors"
	"upstreamcli/internal/exporter"
	"upstreamcli/internal/files"
	"upstreamcli/internal/infrastructure"
	"upstreamcli/internal/report"
	"upstreamcli/internal/validation"
	"upstreamcli/pkg/contracts"
	"upstreamcli/pkg/contracts/domain"
)

const inputPrompt = "¿De qué Lote necesitas información? "

type options struct {
	file     string
	encoding string
	lote     string
	format   string
	out      string
	list     bool
	verbose  bool
	version  bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("lote-report", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.file, "file", "", "path to the integrated CSV (overrides UPSTREAM_DATA_FILE)")
	fs.StringVar(&opts.encoding, "encoding", "", "source encoding: utf-8, windows-1252 or latin1")
	fs.StringVar(&opts.lote, "lote", "", "Lote to report on; prompts on stdin when omitted")
	fs.StringVar(&opts.format, "format", string(domain.ReportFormatText), "output format: text, csv, xlsx or json")
	fs.StringVar(&opts.out, "out", "", "write the output to this file instead of stdout")
	fs.BoolVar(&opts.list, "list", false, "list the available Lotes and exit")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")
	fs.BoolVar(&opts.version, "version", false, "print version information and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch domain.ReportFormat(opts.format) {
	case domain.ReportFormatText, domain.ReportFormatCSV, domain.ReportFormatJSON:
	case domain.ReportFormatExcel:
		if opts.out == "" {
			return opts, errors.New("-format xlsx requires -out")
		}
	default:
		return opts, fmt.Errorf("unsupported format %q", opts.format)
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.version {
		fmt.Fprintln(stdout, contracts.GetFullVersionString())
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "failed to load configuration: %v\n", err)
		return 1
	}
	if opts.file != "" {
		cfg.Data.File = opts.file
	}
	if opts.encoding != "" {
		cfg.Data.Encoding = opts.encoding
	}
	if !opts.verbose {
		cfg.Logging.Level = "warn"
	}
	cfg.Logging.Output = "console"
	cfg.Telemetry.MetricExporter = "none"

	logger, err := infrastructure.NewLogger(cfg.Logging, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "failed to initialize logger: %v\n", err)
		return 1
	}

	providers, err := infrastructure.InitializeOTel(cfg.Telemetry, logger)
	if err != nil {
		logger.Error("Failed to initialize OpenTelemetry", slog.String("error", err.Error()))
		return 1
	}
	defer providers.Shutdown(context.WithoutCancel(ctx))

	container, err := app.NewServiceContainer(cfg, logger, providers)
	if err != nil {
		logger.Error("Failed to initialize services", slog.String("error", err.Error()))
		return 1
	}

	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateDataFile(container.Provider.Path()); err != nil {
		printError(stderr, err)
		return 1
	}
	if _, err := container.Provider.Get(ctx); err != nil {
		printError(stderr, err)
		return 1
	}

	if opts.out != "" {
		if err := validator.ValidateOutputPath(opts.out); err != nil {
			printError(stderr, err)
			return 1
		}
	}

	cli := &reportCLI{
		container: container,
		files:     files.NewManager("", logger),
		stdout:    stdout,
		stderr:    stderr,
		format:    domain.ReportFormat(opts.format),
		out:       opts.out,
	}

	switch {
	case opts.list:
		err = cli.listLotes(ctx)
	case opts.lote != "":
		err = cli.render(ctx, opts.lote)
	default:
		err = cli.interactive(ctx, stdin)
	}
	if err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

type reportCLI struct {
	container *app.ServiceContainer
	files     *files.Manager
	stdout    io.Writer
	stderr    io.Writer
	format    domain.ReportFormat
	out       string
}

func (c *reportCLI) listLotes(ctx context.Context) error {
	lotes, err := c.container.Report.ListLotes(ctx)
	if err != nil {
		return err
	}

	if c.out != "" {
		records := make([][]string, len(lotes))
		for i, l := range lotes {
			records[i] = []string{l}
		}
		return exporter.NewCSVWriter("").WriteCSV(c.out, exporter.WriteOptions{
			Headers:   []string{domain.LabelLote},
			Records:   records,
			BOMPrefix: true,
		})
	}

	for _, l := range lotes {
		fmt.Fprintln(c.stdout, l)
	}
	return nil
}

// render produces one report. A blank lote prints the prompt message
// instead of failing.
func (c *reportCLI) render(ctx context.Context, lote string) error {
	var err error
	if c.out != "" {
		err = c.files.Create(c.out, func(w io.Writer) error {
			return c.container.Report.Export(ctx, lote, c.format, w)
		})
	} else {
		err = c.container.Report.Export(ctx, lote, c.format, c.stdout)
	}

	if apperrors.IsType(err, apperrors.ErrTypeMissingInput) {
		fmt.Fprintln(c.stdout, report.PromptMessage)
		return nil
	}
	return err
}

func (c *reportCLI) interactive(ctx context.Context, stdin io.Reader) error {
	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(c.stdout, inputPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(c.stdout)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		lote := strings.TrimSpace(scanner.Text())
		if err := c.render(ctx, lote); err != nil {
			printError(c.stderr, err)
		}
	}
}

func printError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(w, "Error: %s\n", describe(err))
}

func describe(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ErrTypeFileNotFound:
			return fmt.Sprintf("%s. Verifica la ruta con -file o UPSTREAM_DATA_FILE.", appErr.Message)
		case apperrors.ErrTypeLoad:
			if appErr.Cause != nil {
				return fmt.Sprintf("no se pudieron cargar los datos: %s: %v", appErr.Message, appErr.Cause)
			}
			return fmt.Sprintf("no se pudieron cargar los datos: %s", appErr.Message)
		}
	}
	return err.Error()
}
