package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/barchart/pkg/chart"
	"github.com/matzehuels/barchart/pkg/errors"
	"github.com/matzehuels/barchart/pkg/io"
	"github.com/matzehuels/barchart/pkg/pipeline"
	"github.com/matzehuels/barchart/pkg/render"
)

// stdinPath is the data argument that reads the dataset from stdin.
const stdinPath = "-"

// chartFlags holds the chart options shared by render and inspect.
type chartFlags struct {
	configPath  string
	sheet       string
	inputFormat string
	cfg         chart.Config
}

func (f *chartFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "TOML chart config file")
	fs.StringVar(&f.sheet, "sheet", "", "sheet name for xlsx datasets (default: first sheet)")
	fs.StringVar(&f.inputFormat, "input-format", io.FormatJSON, "dataset format when reading stdin: json, toml, csv, xlsx")

	fs.Float64Var(&f.cfg.Width, "width", pipeline.DefaultWidth, "canvas width in pixels")
	fs.Float64Var(&f.cfg.Height, "height", pipeline.DefaultHeight, "canvas height in pixels")
	fs.BoolVar(&f.cfg.UseGuidelines, "guidelines", false, "draw guidelines at every slot boundary")
	fs.StringVar(&f.cfg.AxisColor, "axis-color", "", "axis color (default: random)")
	fs.Float64Var(&f.cfg.AxisWidth, "axis-width", chart.DefaultAxisWidth, "axis line width")
	fs.StringVar(&f.cfg.FontColor, "font-color", "", "label color (default: random)")
	fs.StringVar(&f.cfg.FontStyle, "font-style", chart.DefaultFontStyle, "label font style")
	fs.StringVar(&f.cfg.FontWeight, "font-weight", chart.DefaultFontWeight, "label font weight")
	fs.StringVar(&f.cfg.FontFamily, "font-family", chart.DefaultFontFamily, "label font family")
	fs.StringVar(&f.cfg.BarColor, "bar-color", "", "bar fill color (default: random)")
	fs.StringVar(&f.cfg.BarBorderColor, "bar-border-color", "", "bar border color (default: random)")
	fs.StringVar(&f.cfg.GuidelineColor, "guideline-color", "", "guideline color (default: random)")
	fs.Float64Var(&f.cfg.GuidelineWidth, "guideline-width", chart.DefaultGuidelineWidth, "guideline width")
	fs.Uint64Var(&f.cfg.Seed, "seed", pipeline.DefaultSeed, "seed for generated colors")
}

// configFlags maps flag names to the config fields they set.
var configFlags = map[string]func(dst *chart.Config, src chart.Config){
	"width":            func(d *chart.Config, s chart.Config) { d.Width = s.Width },
	"height":           func(d *chart.Config, s chart.Config) { d.Height = s.Height },
	"guidelines":       func(d *chart.Config, s chart.Config) { d.UseGuidelines = s.UseGuidelines },
	"axis-color":       func(d *chart.Config, s chart.Config) { d.AxisColor = s.AxisColor },
	"axis-width":       func(d *chart.Config, s chart.Config) { d.AxisWidth = s.AxisWidth },
	"font-color":       func(d *chart.Config, s chart.Config) { d.FontColor = s.FontColor },
	"font-style":       func(d *chart.Config, s chart.Config) { d.FontStyle = s.FontStyle },
	"font-weight":      func(d *chart.Config, s chart.Config) { d.FontWeight = s.FontWeight },
	"font-family":      func(d *chart.Config, s chart.Config) { d.FontFamily = s.FontFamily },
	"bar-color":        func(d *chart.Config, s chart.Config) { d.BarColor = s.BarColor },
	"bar-border-color": func(d *chart.Config, s chart.Config) { d.BarBorderColor = s.BarBorderColor },
	"guideline-color":  func(d *chart.Config, s chart.Config) { d.GuidelineColor = s.GuidelineColor },
	"guideline-width":  func(d *chart.Config, s chart.Config) { d.GuidelineWidth = s.GuidelineWidth },
	"seed":             func(d *chart.Config, s chart.Config) { d.Seed = s.Seed },
}

// resolveConfig merges the config file with flags. Without a config file
// the flag values (including their defaults) are used as is; with one,
// only explicitly set flags override the file.
func (f *chartFlags) resolveConfig(cmd *cobra.Command) (chart.Config, error) {
	if f.configPath == "" {
		return f.cfg, nil
	}
	cfg, err := io.LoadConfig(f.configPath)
	if err != nil {
		return chart.Config{}, err
	}
	for name, apply := range configFlags {
		if cmd.Flags().Changed(name) {
			apply(&cfg, f.cfg)
		}
	}
	return cfg, nil
}

// loadDataset reads the dataset from path, or from stdin for "-".
func (f *chartFlags) loadDataset(cmd *cobra.Command, path string) (chart.Dataset, error) {
	if path == stdinPath {
		if f.inputFormat == io.FormatXLSX && f.sheet != "" {
			return io.ReadXLSX(cmd.InOrStdin(), f.sheet)
		}
		return io.Read(cmd.InOrStdin(), f.inputFormat)
	}
	return io.ImportSheet(path, f.sheet)
}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	chartFlags
	output  string // output file (single format) or base path (multiple)
	formats string // comma-separated output formats
	noCache    bool
	refresh    bool
	saveConfig string // write the resolved chart config as TOML
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <data>",
		Short: "Render a dataset as a bar chart",
		Long: `Render a dataset as a bar chart.

The dataset is a .json, .toml, .csv or .xlsx file of labeled values, or "-"
to read from stdin. Colors left unset are generated from --seed.`,
		Example: `  barchart render sales.csv
  barchart render sales.xlsx --sheet Q3 -f svg,png -o out/q3
  cat data.json | barchart render - --guidelines --bar-color steelblue`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "svg", "output format(s): svg, png, pdf, json (comma-separated)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")
	cmd.Flags().StringVar(&opts.saveConfig, "save-config", "", "write the resolved chart config to a TOML file")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	formats, err := render.ParseFormats(opts.formats)
	if err != nil {
		return err
	}
	if len(formats) == 0 {
		formats = pipeline.DefaultFormats
	}
	for _, f := range formats {
		if f == render.FormatPDF && !render.ConverterAvailable() {
			return errors.New(errors.ErrCodeUnsupported, "pdf output requires rsvg-convert (install librsvg)")
		}
	}

	cfg, err := opts.resolveConfig(cmd)
	if err != nil {
		return err
	}
	data, err := opts.loadDataset(cmd, path)
	if err != nil {
		return err
	}
	logger.Debug("loaded dataset", "path", path, "items", len(data))

	paths, err := outputPaths(opts.output, path, formats)
	if err != nil {
		return err
	}
	if opts.saveConfig != "" && samePath(opts.saveConfig, path) {
		return errors.New(errors.ErrCodeInvalidPath, "--save-config %s would overwrite the input", opts.saveConfig)
	}
	runOpts := pipeline.Options{
		Config:  cfg,
		Data:    data,
		Formats: formats,
		Refresh: opts.refresh,
	}
	if err := runOpts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering chart...")
	spinner.Start()
	prog := newProgress(logger)
	res, err := runner.Execute(ctx, runOpts)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(res.Artifacts)))

	for _, f := range formats {
		if err := writeArtifact(paths[f], res.Artifacts[f]); err != nil {
			return err
		}
	}
	if opts.saveConfig != "" {
		if err := io.SaveConfig(opts.saveConfig, runOpts.Config); err != nil {
			return err
		}
	}

	printSuccess("Rendered %s", StyleValue.Render(displayName(path)))
	for _, f := range formats {
		printFile(paths[f])
	}
	if opts.saveConfig != "" {
		printFile(opts.saveConfig)
	}
	printStats(res.Stats.ItemCount, fmt.Sprint(res.Chart.Layout().VerticalUpperBound), len(formats), res.CacheInfo.RenderHit)
	return nil
}

// outputPaths picks a file per format. A single format writes to output
// verbatim when given; otherwise output (or the input name) is a base path
// that gets each format's extension. A derived path that would land on the
// input file gets a ".chart" infix instead; an explicit one is an error.
func outputPaths(output, input string, formats []render.Format) (map[render.Format]string, error) {
	paths := make(map[render.Format]string, len(formats))
	if len(formats) == 1 && output != "" {
		if samePath(output, input) {
			return nil, errors.New(errors.ErrCodeInvalidPath, "output %s would overwrite the input", output)
		}
		paths[formats[0]] = output
		return paths, nil
	}

	base := output
	if base == "" {
		base = "chart"
		if input != stdinPath {
			base = filepath.Base(input)
		}
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	for _, f := range formats {
		p := base + f.Extension()
		if samePath(p, input) {
			p = base + ".chart" + f.Extension()
		}
		paths[f] = p
	}
	return paths, nil
}

// samePath reports whether a and b name the same file: equal absolute
// paths, or existing files that resolve to one inode.
func samePath(a, b string) bool {
	if a == stdinPath || b == stdinPath {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}
	infoA, errA := os.Stat(a)
	infoB, errB := os.Stat(b)
	return errA == nil && errB == nil && os.SameFile(infoA, infoB)
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func displayName(path string) string {
	if path == stdinPath {
		return "stdin"
	}
	return filepath.Base(path)
}
