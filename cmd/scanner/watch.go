package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tokenScope/internal/analysis"
	"tokenScope/internal/config"
	"tokenScope/internal/render"
)

func runWatch(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	out, err := render.New(cfg.Output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	svc, err := newService(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	display := newStateDisplay(out, cmd.ErrOrStderr(), logger)
	session := analysis.NewSession(ctx, svc, display.show, logger)
	defer session.Close()

	logger.Info("watch start",
		zap.String("model", cfg.Model),
		zap.Bool("metadata_enabled", cfg.MetadataEnabled),
		zap.String("output", cfg.Output),
	)

	return feedSession(ctx, cmd.InOrStdin(), session)
}

// feedSession submits every line of in until EOF or ctx is done, then waits
// for the last submission to settle.
func feedSession(ctx context.Context, in io.Reader, session *analysis.Session) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				session.Wait()
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("read stdin: %w", err)
					}
				default:
				}
				return nil
			}
			session.Submit(line)
		}
	}
}

// stateDisplay renders session state changes: rows go to out, messages to msgs.
type stateDisplay struct {
	mu     sync.Mutex
	out    render.Writer
	msgs   io.Writer
	logger *zap.Logger
}

func newStateDisplay(out render.Writer, msgs io.Writer, logger *zap.Logger) *stateDisplay {
	return &stateDisplay{out: out, msgs: msgs, logger: logger}
}

func (d *stateDisplay) show(state analysis.DisplayState) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if state.Message != "" {
		fmt.Fprintf(d.msgs, "%s: %s\n", state.Level, state.Message)
		return
	}
	if state.Report == nil {
		return
	}
	if err := d.out.WriteReport(*state.Report); err != nil {
		d.logger.Warn("render failed", zap.Error(err))
		return
	}
	if err := d.out.Flush(); err != nil {
		d.logger.Warn("render flush failed", zap.Error(err))
	}
}
