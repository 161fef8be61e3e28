package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/viant/personnel/cache"
	"github.com/viant/personnel/cache/memory"
	rediscache "github.com/viant/personnel/cache/redis"
	"github.com/viant/personnel/client"
	"github.com/viant/personnel/config"
	"github.com/viant/personnel/directory"
	"github.com/viant/personnel/validate"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// app holds command dependencies
type app struct {
	cfg       *config.Config
	client    *client.Client
	directory *directory.Directory
	logger    *zap.Logger
	session   string
	closers   []io.Closer
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("personnel", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var configPath, baseURL, sessionPath string
	fs.StringVar(&configPath, "config", "", "YAML config file")
	fs.StringVar(&baseURL, "url", "", "Directory service base URL (overrides config)")
	fs.StringVar(&sessionPath, "session", defaultSessionPath(), "Session cookie file, empty disables persistence")
	fs.Usage = func() { printUsage(errOut) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		printUsage(errOut)
		return 2
	}
	command, commandArgs := fs.Arg(0), fs.Args()[1:]
	if command == "help" {
		printUsage(out)
		return 0
	}
	handler, ok := commands[command]
	if !ok {
		fmt.Fprintf(errOut, "unknown command: %s\n\n", command)
		printUsage(errOut)
		return 2
	}

	cfg, err := loadConfig(configPath, baseURL)
	if err != nil {
		fmt.Fprintf(errOut, "config: %v\n", err)
		return 1
	}
	anApp, err := newApp(cfg, sessionPath)
	if err != nil {
		fmt.Fprintf(errOut, "init: %v\n", err)
		return 1
	}
	defer anApp.close()
	return handler(anApp, commandArgs, out, errOut)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "personnel: personnel directory client")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  personnel [-config file] [-url baseURL] [-session file] <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  register -u <username> -p <password>")
	fmt.Fprintln(w, "  login -u <username> -p <password>")
	fmt.Fprintln(w, "  logout")
	fmt.Fprintln(w, "  profile")
	fmt.Fprintln(w, "  session")
	fmt.Fprintln(w, "  departments list|get <id>|delete <id>")
	fmt.Fprintln(w, "  departments create|update <id> -name <n> -address1 <a> [-address2 <a>] -town <t> -county <c> -postcode <p>")
	fmt.Fprintln(w, "  employees list|get <id>|delete <id>")
	fmt.Fprintln(w, "  employees create|update <id> -title <t> -first <f> -last <l> -empno <n> -job <j> -department <id> -telephone <t> -email <e> [-picture <file>]")
	fmt.Fprintln(w, "  overview [-i]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 ok, 1 runtime error, 2 usage error")
}

func loadConfig(location, baseURL string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if location != "" {
		if cfg, err = config.LoadFile(location); err != nil {
			return nil, err
		}
	} else {
		cfg = config.Default()
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
		if err = cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func newApp(cfg *config.Config, sessionPath string) (*app, error) {
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	ret := &app{cfg: cfg, logger: logger, session: sessionPath}
	options := []client.Option{
		client.WithTimeout(cfg.Timeout),
		client.WithLogger(logger),
		client.WithCaseTranscoding(cfg.WireFormat(), cfg.LocalFormat()),
	}
	if adapter := ret.cacheAdapter(); adapter != nil {
		options = append(options, client.WithCache(adapter, cfg.Cache.TTL, directory.CacheablePaths...))
	}
	if ret.client, err = client.New(cfg.BaseURL, options...); err != nil {
		return nil, err
	}
	if err = ret.loadSession(); err != nil {
		logger.Warn("failed to restore session", zap.String("location", sessionPath), zap.Error(err))
	}
	ret.directory = directory.New(ret.client)
	return ret, nil
}

func (a *app) cacheAdapter() cache.Adapter {
	switch a.cfg.Cache.Backend {
	case config.CacheBackendMemory:
		return memory.New()
	case config.CacheBackendRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     a.cfg.Cache.Redis.Addr,
			Password: a.cfg.Cache.Redis.Password,
			DB:       a.cfg.Cache.Redis.DB,
		})
		a.closers = append(a.closers, redisClient)
		return rediscache.New(redisClient, a.cfg.Cache.Redis.Namespace)
	}
	return nil
}

func (a *app) close() {
	for _, closer := range a.closers {
		_ = closer.Close()
	}
	_ = a.logger.Sync()
}

func newLogger(cfg config.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %v: %w", cfg.Level, err)
	}
	zapConfig := zap.NewProductionConfig()
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{"stderr"}
	return zapConfig.Build()
}

func (a *app) context() context.Context {
	return context.Background()
}

// report prints err and returns runtime failure exit code
func report(errOut io.Writer, action string, err error) int {
	if fieldErrors := validate.FieldErrors(err); len(fieldErrors) > 0 {
		fmt.Fprintf(errOut, "%s: validation failed\n", action)
		for _, fieldErr := range fieldErrors {
			fmt.Fprintf(errOut, "  - %s\n", fieldErr.Message)
		}
		return 1
	}
	fmt.Fprintf(errOut, "%s: %v\n", action, err)
	if client.IsRetryable(err) {
		fmt.Fprintln(errOut, "the request can be retried")
	}
	return 1
}
