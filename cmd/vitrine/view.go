package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/vitrine/internal/carousel"
	"github.com/alexisbeaulieu97/vitrine/internal/clock"
	"github.com/alexisbeaulieu97/vitrine/internal/config"
	"github.com/alexisbeaulieu97/vitrine/internal/logger"
	"github.com/alexisbeaulieu97/vitrine/internal/media"
	"github.com/alexisbeaulieu97/vitrine/internal/overlay"
	"github.com/alexisbeaulieu97/vitrine/internal/preload"
	"github.com/alexisbeaulieu97/vitrine/internal/tui/viewer"
	"github.com/alexisbeaulieu97/vitrine/internal/ui/components"
)

var errNoTerminal = errors.New("output is not a terminal")

type viewOptions struct {
	catalogPath string
	index       int
	theme       string
	mode        viewer.Mode
}

func newPreviewCmd(app *appContext) *cobra.Command {
	return newViewCmd(app, viewer.ModePreview,
		"preview <catalog>",
		"Browse a catalog in an inline card",
		`Preview shows the catalog as a card with arrows, dots and badges.
Press enter or click the card to open it full screen; overlays can be nested.`)
}

func newOverlayCmd(app *appContext) *cobra.Command {
	return newViewCmd(app, viewer.ModeOverlay,
		"overlay <catalog>",
		"Open a catalog full screen",
		`Overlay opens the catalog full screen straight away. Closing the last
overlay exits.`)
}

func newViewCmd(app *appContext, mode viewer.Mode, use, short, long string) *cobra.Command {
	opts := &viewOptions{mode: mode}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.catalogPath = args[0]
			defer app.close()
			return runView(cmd, app, opts)
		},
	}

	cmd.Flags().IntVar(&opts.index, "index", -1, "Start at this item instead of the catalog's initial_index")
	cmd.Flags().StringVar(&opts.theme, "theme", "default", "Colour theme: default, dark or ascii")

	return cmd
}

func runView(cmd *cobra.Command, app *appContext, opts *viewOptions) error {
	if err := app.load(cmd, true); err != nil {
		return err
	}

	if !isTerminal(cmd.OutOrStdout()) {
		return withCode(newCommandError("open viewer", "checking the output", errNoTerminal,
			"Run vitrine from an interactive terminal, or use 'vitrine validate' in scripts."), exitNoTerminal)
	}

	theme, err := themeByName(opts.theme)
	if err != nil {
		return withCode(newCommandError("open viewer", "selecting the theme", err, "Use --theme default, dark or ascii."), exitInvalid)
	}

	doc, err := config.ParseCatalog(opts.catalogPath)
	if err != nil {
		return withCode(newCommandError("open viewer", fmt.Sprintf("parsing catalog %q", opts.catalogPath), err,
			"Run 'vitrine validate' on the catalog for details."), exitInvalid)
	}

	model, stack := buildViewer(app, doc, opts, theme)
	stopMetrics := app.serveMetrics(func() {
		app.metrics.SetOpenOverlays(stack.Count())
	})
	defer stopMetrics()

	app.log.Info("viewer starting", "catalog", opts.catalogPath, "items", len(doc.Items), "surface", surfaceName(opts.mode))

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	final, runErr := program.Run()
	if m, ok := final.(viewer.Model); ok {
		m.Shutdown()
	} else {
		model.Shutdown()
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		app.log.Error(runErr, "viewer failed")
		return newCommandError("run viewer", opts.catalogPath, runErr, "")
	}

	app.log.Info("viewer closed")
	return nil
}

// buildViewer wires the controller, its loop and the overlay stack for doc.
func buildViewer(app *appContext, doc *config.Document, opts *viewOptions, theme components.Theme) (viewer.Model, *overlay.Stack) {
	cfg := doc.CarouselConfig()
	if opts.index >= 0 {
		cfg.InitialIndex = opts.index
	}

	root := app.settings.Media.Root
	if root == "" {
		root = doc.BaseDir
	}

	sched := clock.NewRealtime()
	ctrlOpts := []carousel.Option{
		carousel.WithScheduler(sched),
		carousel.WithLogger(app.log),
		carousel.WithMetrics(app.metrics),
		carousel.WithSurface(surfaceName(opts.mode)),
	}
	var loader preload.Loader
	if app.settings.Media.Verify {
		loader = preload.FileLoader{Root: root}
		ctrlOpts = append(ctrlOpts, carousel.WithLoader(loader))
	}
	ctrl := carousel.New(doc.Catalog(), cfg, loggingCallbacks(app.log), ctrlOpts...)

	stack := overlay.NewStack(app.settings.Overlay.BaseZ, app.settings.Overlay.Increment)
	stack.SetLogger(app.log)

	title := doc.Name
	if title == "" {
		title = "vitrine"
	}

	model := viewer.NewModel(viewer.Options{
		Controller: ctrl,
		Scheduler:  sched,
		Loader:     loader,
		Mode:       opts.mode,
		Title:      title,
		Theme:      theme,
		Overlay: viewer.OverlayOptions{
			ZIndex:          doc.Overlay.ZIndex,
			CloseOnEscape:   doc.Overlay.CloseOnEscape,
			CloseOnBackdrop: doc.Overlay.CloseOnBackdrop,
		},
		Stack:   stack,
		Logger:  app.log,
		Metrics: app.metrics,
	})
	return model, stack
}

func loggingCallbacks(log *logger.Logger) carousel.Callbacks {
	log = log.Component("host")
	return carousel.Callbacks{
		OnIndexChange: func(index int, item media.Descriptor) {
			log.Debug("index changed", "index", index, "kind", item.Kind().String())
		},
		OnVideoPlay: func(index int, item media.Descriptor) {
			log.Debug("video playing", "index", index, "source", media.SourceOf(item))
		},
		OnVideoPause: func(index int, item media.Descriptor) {
			log.Debug("video paused", "index", index, "source", media.SourceOf(item))
		},
	}
}

func surfaceName(mode viewer.Mode) string {
	if mode == viewer.ModeOverlay {
		return "overlay"
	}
	return "inline"
}

func themeByName(name string) (components.Theme, error) {
	switch name {
	case "", "default":
		return components.DefaultTheme(), nil
	case "dark":
		return components.DarkTheme(), nil
	case "ascii":
		return components.ASCIITheme(), nil
	default:
		return components.Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

func isTerminal(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
