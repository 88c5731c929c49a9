package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"wordcounter/internal/config"
	wcerrors "wordcounter/internal/errors"
	"wordcounter/internal/slogutil"
	"wordcounter/internal/version"
)

// defaultPort is the HTTP port used when --port is not given.
const defaultPort = 55000

// errUsage signals that help was already printed and the process should
// exit non-zero without another message.
var errUsage = errors.New("usage")

// options holds the parsed command line.
type options struct {
	stdinServer bool
	httpServer  bool
	apiKey      string
	port        int
	configPath  string
	logLevel    string
	printConfig string
}

// streams are the process streams, replaceable in tests.
type streams struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// run executes the command line and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(streams{stdin: stdin, stdout: stdout, stderr: stderr})
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "Error: %s\n", wcerrors.MessageOf(err))
		}
		return 1
	}
	return 0
}

func newRootCmd(s streams) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "wordcounter [file_path]",
		Short: "Count lines, words, and characters in a text file",
		Long: `wordcounter reports line, word, and character counts for a UTF-8 text file.

With a file path it prints the counts as JSON and exits. It can also run as a
server: --mcp-server-stdin answers one JSON request per line on stdin, and
--mcp-server-http serves the same operation over HTTP.`,
		Example: `  wordcounter notes.txt
  echo '{"file_path": "notes.txt"}' | wordcounter --mcp-server-stdin
  wordcounter --mcp-server-http --api-key secret --port 8080`,
		Version:       version.Info(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args, s)
		},
	}

	cmd.SetIn(s.stdin)
	cmd.SetOut(s.stdout)
	cmd.SetErr(s.stderr)
	cmd.SetVersionTemplate(version.Full() + "\n")

	flags := cmd.Flags()
	flags.BoolVar(&opts.stdinServer, "mcp-server-stdin", false, "Run as MCP server using stdin as transport")
	flags.BoolVar(&opts.httpServer, "mcp-server-http", false, "Run as MCP server using HTTP transport")
	flags.StringVar(&opts.apiKey, "api-key", "", "API key for HTTP server authentication")
	flags.IntVar(&opts.port, "port", defaultPort, "Port for HTTP server")
	flags.StringVar(&opts.configPath, "config", "", "Config file for logging and HTTP tuning (json, yaml, or toml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flags.StringVar(&opts.printConfig, "print-config", "", "Print the effective config as json, yaml, or toml and exit")
	cmd.MarkFlagsMutuallyExclusive("mcp-server-stdin", "mcp-server-http")

	return cmd
}

func (o *options) run(cmd *cobra.Command, args []string, s streams) error {
	if o.logLevel != "" && !slogutil.IsValidLevel(o.logLevel) {
		return fmt.Errorf("invalid log level %q (valid: debug, info, warn, error)", o.logLevel)
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	if o.printConfig != "" {
		data, err := cfg.Encode(o.printConfig)
		if err != nil {
			return err
		}
		_, err = s.stdout.Write(data)
		return err
	}

	factory := slogutil.NewLoggerFactory(cfg.Logging, o.logLevel)
	factory.SetOutput(s.stderr)
	defer factory.Close()

	switch {
	case o.stdinServer:
		logger, err := factory.Logger("stdin")
		if err != nil {
			return err
		}
		return runStdin(s, logger)
	case o.httpServer:
		logger, err := factory.Logger("http")
		if err != nil {
			return err
		}
		return runHTTP(cfg, o, s, logger)
	}

	if len(args) == 0 {
		if err := cmd.Help(); err != nil {
			return fmt.Errorf("failed to print help: %w", err)
		}
		return errUsage
	}

	logger, err := factory.Logger("cli")
	if err != nil {
		return err
	}
	return runCount(args[0], s, logger)
}
