package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/vbodraw/vbodraw"
	"github.com/benoitkugler/vbodraw/vbogroup"
	"github.com/benoitkugler/vbodraw/vbopdf"
	"github.com/benoitkugler/vbodraw/vboraster"
	"github.com/benoitkugler/vbodraw/vborecord"
	"github.com/benoitkugler/vbodraw/vboscene"
	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var renderCmd subCommand

func init() {
	renderCmd.Cmd = &cobra.Command{
		Use:   "render",
		Short: "Render a scene to a .png, a .pdf or a dump of the draw operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(renderCmd.Conf, cmd.OutOrStdout())
		},
	}

	flag := renderCmd.Cmd.Flags()
	flag.StringP("scene", "s", "", "Scene file (.xml, .yaml or .yml). The demo scene is used if empty.")
	flag.StringP("out", "o", "", "Output file (.png or .pdf). The draw operations are printed if empty.")
	flag.Int("width", 600, "Width of the output, in pixels or points.")
	flag.Int("height", 600, "Height of the output, in pixels or points.")
	flag.Float64("span", vbodraw.DefaultSpan, "Model units visible across the output width.")
	flag.Bool("strict", false, "Reject scenes with unknown content instead of logging warnings.")
	flag.Bool("dump", false, "Print the draw operations instead of writing --out.")
}

// renderOptions are the resolved settings of the render command.
type renderOptions struct {
	scene         string
	out           string
	width, height int
	span          float64
	strict        bool
	dump          bool
}

func newRenderOptions(conf *viper.Viper) (renderOptions, error) {
	opts := renderOptions{
		scene:  conf.GetString("scene"),
		out:    conf.GetString("out"),
		width:  conf.GetInt("width"),
		height: conf.GetInt("height"),
		span:   conf.GetFloat64("span"),
		strict: conf.GetBool("strict"),
		dump:   conf.GetBool("dump"),
	}
	if opts.width <= 0 || opts.height <= 0 {
		return opts, errors.Errorf("invalid output size %dx%d", opts.width, opts.height)
	}
	if opts.span <= 0 {
		opts.span = vbodraw.DefaultSpan
	}
	return opts, nil
}

func (opts renderOptions) loadScene() (*vbogroup.Scene, error) {
	if opts.scene == "" {
		return vbogroup.NewDemoScene(), nil
	}
	errMode := vboscene.WarnErrorMode
	if opts.strict {
		errMode = vboscene.StrictErrorMode
	}
	return vboscene.ReadFile(opts.scene, errMode)
}

// visibleBounds returns the model space rectangle
// displayed on a `width` x `height` output.
func visibleBounds(width, height int, span float64) vbogroup.Bounds {
	halfW := span / 2
	halfH := halfW * float64(height) / float64(width)
	return vbogroup.Bounds{MinX: -halfW, MinY: -halfH, MaxX: halfW, MaxY: halfH}
}

func runRender(conf *viper.Viper, stdout io.Writer) error {
	logger, err := setupLogger(conf)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts, err := newRenderOptions(conf)
	if err != nil {
		return err
	}
	scene, err := opts.loadScene()
	if err != nil {
		return err
	}
	return render(scene, opts, logger, stdout)
}

// render draws the scene on the backend selected by opts.out.
// Groups which can't be drawn are reported in the returned error,
// but the output is still written.
func render(scene *vbogroup.Scene, opts renderOptions, logger *zap.Logger, stdout io.Writer) error {
	if ext, ok := vbogroup.Extent(scene.Groups()); ok {
		vis := visibleBounds(opts.width, opts.height, opts.span)
		if !vis.Contains(ext.MinX, ext.MinY) || !vis.Contains(ext.MaxX, ext.MaxY) {
			logger.Warn("some vertices are outside of the visible area",
				zap.Float64("span", opts.span), zap.Any("extent", ext))
		}
	}

	renderer := vbodraw.DefaultRenderer
	renderer.Span = opts.span

	var (
		view   *vbodraw.View
		output func() error
	)
	switch ext := strings.ToLower(filepath.Ext(opts.out)); {
	case opts.out == "" || opts.dump:
		rec := vborecord.NewRecorder(opts.width, opts.height)
		view = vbodraw.NewView(scene, rec, renderer)
		output = func() error {
			_, err := fmt.Fprintln(stdout, rec.String())
			return err
		}
	case ext == ".png":
		s := vboraster.NewSurface(opts.width, opts.height, vboraster.Options{})
		view = vbodraw.NewView(scene, s, renderer)
		output = func() error { return s.SavePNG(opts.out) }
	case ext == ".pdf":
		s := vbopdf.NewSurface(opts.width, opts.height)
		view = vbodraw.NewView(scene, s, renderer)
		output = func() error { return s.OutputFileAndClose(opts.out) }
	default:
		return errors.Errorf("unsupported output format %q", ext)
	}

	renderErr := view.Redraw()
	stats := view.LastStats()
	logger.Info("scene rendered",
		zap.Int("groups", scene.Len()), zap.Int("primitives", stats.Total()))

	if err := output(); err != nil {
		return multierr.Append(renderErr, err)
	}
	if opts.out != "" && !opts.dump {
		info, err := os.Stat(opts.out)
		if err != nil {
			return multierr.Append(renderErr, err)
		}
		fmt.Fprintf(stdout, "%s written (%s)\n", opts.out, humanize.Bytes(uint64(info.Size())))
	}
	return renderErr
}
