package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"gw2inventory/internal/config"
	"gw2inventory/internal/fileutil"
	"gw2inventory/internal/gw2"
	"gw2inventory/internal/itemcache"
	"gw2inventory/internal/logging"
)

// dotEnvFile is read from the working directory when present. Values already
// set in the environment win.
const dotEnvFile = ".env"

type commandContext struct {
	configFlag *string
	verbose    *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
	sessionID  string
}

func newCommandContext(configFlag *string, verbose *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		verbose:    verbose,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		if err := loadDotEnv(dotEnvFile); err != nil {
			c.configErr = err
			return
		}
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the session logger once. Every record carries the
// session id so one run can be picked out of the shared log file.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg, c.verbose != nil && *c.verbose)
		if err != nil {
			c.loggerErr = err
			return
		}
		c.sessionID = logging.NewSessionID()
		c.logger = logging.WithContext(logging.WithSessionID(context.Background(), c.sessionID), logger)
	})
	return c.logger, c.loggerErr
}

// runEnv bundles the collaborators data commands share.
type runEnv struct {
	cfg    *config.Config
	logger *slog.Logger
	client *gw2.Client
	cache  *itemcache.Cache
}

func (c *commandContext) environment(cmd *cobra.Command) (*runEnv, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	client, err := gw2.New(cfg.API.Key, cfg.API.BaseURL,
		gw2.WithLogger(logger),
		gw2.WithLanguage(cfg.API.Language),
		gw2.WithTimeout(cfg.RequestTimeout()),
	)
	if err != nil {
		return nil, err
	}
	logger.Debug("command started",
		logging.String("command", cmd.CommandPath()),
		logging.String("base_url", cfg.API.BaseURL))
	return &runEnv{
		cfg:    cfg,
		logger: logger,
		client: client,
		cache:  itemcache.New(cfg.Cache.Path, logger),
	}, nil
}

func loadDotEnv(path string) error {
	exists, err := fileutil.Exists(path)
	if err != nil || !exists {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func isTerminal(stream any) bool {
	file, ok := stream.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func interactive(cmd *cobra.Command) bool {
	return isTerminal(cmd.InOrStdin()) && isTerminal(cmd.OutOrStdout())
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
