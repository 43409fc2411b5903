package main

import (
	"io/ioutil"
	"math"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

// Everything the command can be told. Settings come from defaults, then an
// optional YAML config file, then flags, each overriding the last.
type Config struct {
	Input   string  `yaml:"input"`
	Format  string  `yaml:"format"`
	Render  string  `yaml:"render"`
	Scale   float64 `yaml:"scale"`
	MaxSize int     `yaml:"max_size"`
	Imgcat  bool    `yaml:"imgcat"`
	Color   bool    `yaml:"color"`
	Strict  bool    `yaml:"strict"`
	Verbose bool    `yaml:"verbose"`
	Debug   bool    `yaml:"debug"`

	ConfigPath string `yaml:"-"`
}

func defaultConfig(color bool) Config {
	return Config{
		Input:  "-",
		Format: "text",
		Scale:  50,
		Color:  color,
	}
}

func newApp(cfg *Config) *kingpin.Application {
	app := kingpin.New("triangulate", "Polygon triangulation by plane sweep.\n\n"+
		"Input is either a vertex count line followed by that many \"x y\" lines, "+
		"or \"x y\" lines with polygons separated by blank lines. Several polygons "+
		"may be given; each is triangulated on its own.")
	app.Version(Version)

	app.Arg("file", "Polygon file, or - for stdin.").Default(cfg.Input).StringVar(&cfg.Input)
	app.Flag("config", "YAML config file. Flags override its settings.").StringVar(&cfg.ConfigPath)
	app.Flag("format", "Output format.").Short('f').Default(cfg.Format).EnumVar(&cfg.Format, "text", "yaml", "json")
	app.Flag("render", "Render the triangulation to this PNG file.").Short('r').Default(cfg.Render).StringVar(&cfg.Render)
	app.Flag("scale", "Pixels per unit when rendering.").Default(strconv.FormatFloat(cfg.Scale, 'g', -1, 64)).Float64Var(&cfg.Scale)
	app.Flag("max-size", "Shrink rendered images to fit in this many pixels (0 for the largest size drawn).").Default(strconv.Itoa(cfg.MaxSize)).IntVar(&cfg.MaxSize)
	app.Flag("imgcat", "Show rendered images inline (iTerm).").Default(strconv.FormatBool(cfg.Imgcat)).BoolVar(&cfg.Imgcat)
	app.Flag("color", "Colorize output.").Default(strconv.FormatBool(cfg.Color)).BoolVar(&cfg.Color)
	app.Flag("strict", "Check for self-intersecting polygons before triangulating (quadratic).").Default(strconv.FormatBool(cfg.Strict)).BoolVar(&cfg.Strict)
	app.Flag("verbose", "Log timing and counts.").Short('v').Default(strconv.FormatBool(cfg.Verbose)).BoolVar(&cfg.Verbose)
	app.Flag("debug", "Print the sweep classification, diagonals and monotone pieces.").Default(strconv.FormatBool(cfg.Debug)).BoolVar(&cfg.Debug)
	return app
}

// Parse command line arguments. If they name a config file, it is loaded on top
// of the defaults and the arguments are parsed again on top of that.
func parseArgs(args []string, defaults Config) (*Config, error) {
	cfg := defaults
	if _, err := newApp(&cfg).Parse(args); err != nil {
		return nil, err
	}
	if cfg.ConfigPath == "" {
		return &cfg, cfg.check()
	}

	path := cfg.ConfigPath
	fileCfg := defaults
	if err := loadConfigFile(path, &fileCfg); err != nil {
		return nil, err
	}
	cfg = fileCfg
	if _, err := newApp(&cfg).Parse(args); err != nil {
		return nil, err
	}
	cfg.ConfigPath = path
	return &cfg, cfg.check()
}

// Settings the flag parser can't rule out on its own
func (cfg *Config) check() error {
	if cfg.Scale <= 0 || math.IsNaN(cfg.Scale) || math.IsInf(cfg.Scale, 0) {
		return errors.Errorf("scale must be a positive number, got %g", cfg.Scale)
	}
	if cfg.MaxSize < 0 {
		return errors.Errorf("max size must not be negative, got %d", cfg.MaxSize)
	}
	return nil
}

// Overlay the settings in a YAML file onto cfg. Settings missing from the file
// are left alone.
func loadConfigFile(path string, cfg *Config) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "parsing config %s", path)
	}
	return nil
}
