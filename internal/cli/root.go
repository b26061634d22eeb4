// Package cli is the tftmenu command line: a cobra root command whose flags
// may also come from a .tftmenu.toml file or TFTMENU_* environment variables.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"tftmenu/app"
	"tftmenu/hal"
	"tftmenu/internal/buildinfo"
	"tftmenu/menuconf"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type options struct {
	configFile string

	menuPath string
	trace    bool

	headless bool
	hz       int
	ticks    uint64
	snapshot string

	terminal bool

	width  int
	height int
	scale  int
	input  string
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

// NewRootCmd builds the command tree. Each call has its own viper instance.
func NewRootCmd() *cobra.Command {
	var opts options
	v := viper.New()

	root := &cobra.Command{
		Use:   "tftmenu",
		Short: "Show a scrolling selection menu on a small display",
		Long: `tftmenu renders a menu definition onto an emulated TFT display (a desktop
window or a headless framebuffer) or onto the terminal, and navigates it with
the arrow keys. Enter reports the selected item; Escape quits.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(v, opts.configFile); err != nil {
				return err
			}
			return bindFlags(cmd, v)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is ./.tftmenu.toml or $HOME/.tftmenu.toml)")

	f := root.Flags()
	f.StringVarP(&opts.menuPath, "menu", "m", "", "Menu definition (TOML); the built-in demo menu when empty")
	f.BoolVar(&opts.trace, "trace", false, "Log selection changes")
	f.BoolVar(&opts.headless, "headless", false, "Run without a window")
	f.IntVar(&opts.hz, "hz", 60, "Tick rate in headless mode")
	f.Uint64Var(&opts.ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until Escape)")
	f.StringVar(&opts.snapshot, "snapshot", "", "Write the last headless frame to this PNG file")
	f.BoolVarP(&opts.terminal, "terminal", "t", false, "Draw the menu in the terminal instead of a framebuffer")
	f.IntVar(&opts.width, "width", hal.DefaultWidth, "Display width in pixels")
	f.IntVar(&opts.height, "height", hal.DefaultHeight, "Display height in pixels")
	f.IntVar(&opts.scale, "scale", hal.DefaultScale, "Window magnification")
	f.StringVar(&opts.input, "input", "", "Read keys from this evdev device (e.g. /dev/input/event0)")

	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "tftmenu "+buildinfo.Long())
		},
	}
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigType("toml")
		v.SetConfigName(".tftmenu")
	}
	v.SetEnvPrefix("tftmenu")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// bindFlags copies config and environment values into flags that were not
// set on the command line.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || f.Name == "config" {
			return
		}
		if !v.IsSet(f.Name) {
			return
		}
		if serr := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); serr != nil {
			err = fmt.Errorf("config %s: %w", f.Name, serr)
		}
	})
	return err
}

func run(ctx context.Context, opts options, out io.Writer) error {
	def := menuconf.Default()
	if opts.menuPath != "" {
		d, err := menuconf.Load(opts.menuPath)
		if err != nil {
			return err
		}
		def = d
	}
	cfg := app.Config{Menu: def, Trace: opts.trace}

	if opts.terminal {
		return runTerminal(ctx, cfg, out)
	}

	host := hal.HostConfig{
		Width:       opts.width,
		Height:      opts.height,
		Scale:       opts.scale,
		InputDevice: opts.input,
	}
	if opts.headless {
		err := hal.RunHeadless(ctx, hal.HeadlessConfig{
			HostConfig: host,
			Hz:         opts.hz,
			Ticks:      opts.ticks,
			Snapshot:   opts.snapshot,
		}, app.New(cfg))
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	return hal.RunWindow(host, app.New(cfg))
}

func runTerminal(ctx context.Context, cfg app.Config, out io.Writer) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	// The screen owns the terminal until Fini, so log lines are held back.
	log := &lineBuffer{}
	err = app.RunTerminal(ctx, screen, cfg, log)
	screen.Fini()
	log.flushTo(out)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
