package config

import (
	"encoding/json"
	"image/color"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPath is the config file read when ANNOTATOR_CONFIG is unset.
const DefaultPath = "annotator.json"

// Config holds runtime configuration for the annotator.
// Fields may be loaded from a JSON file and overridden from the environment.
type Config struct {
	Debug bool `json:"debug"`

	// Input / output
	Folder     string   `json:"folder"`
	OutputPath string   `json:"output_path"`
	Extensions []string `json:"extensions"`

	// Rendering
	LineColor string  `json:"line_color"` // hex, e.g. "#00ff00"
	LineWidth float64 `json:"line_width"`

	// Session loop
	TickMillis int    `json:"tick_millis"`
	SaveKey    string `json:"save_key"`
	ClearKey   string `json:"clear_key"`
	QuitKey    string `json:"quit_key"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:      false,
		Folder:     "images",
		OutputPath: "annotations.txt",
		Extensions: []string{"jpg", "jpeg", "png", "bmp", "tiff"},
		LineColor:  "#00ff00",
		LineWidth:  2,
		TickMillis: 30,
		SaveKey:    "s",
		ClearKey:   "c",
		QuitKey:    "q",
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	def := DefaultConfig()
	if strings.TrimSpace(c.Folder) == "" {
		c.Folder = def.Folder
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		c.OutputPath = def.OutputPath
	}
	exts := c.Extensions[:0:0]
	for _, e := range c.Extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			exts = append(exts, e)
		}
	}
	if len(exts) == 0 {
		exts = def.Extensions
	}
	c.Extensions = exts
	if _, err := colorful.Hex(c.LineColor); err != nil {
		c.LineColor = def.LineColor
	}
	if c.LineWidth <= 0 || c.LineWidth > 50 {
		c.LineWidth = def.LineWidth
	}
	if c.TickMillis <= 0 {
		c.TickMillis = def.TickMillis
	}
	if c.TickMillis > 1000 {
		c.TickMillis = 1000
	}
	c.SaveKey = normalizeKey(c.SaveKey, def.SaveKey)
	c.ClearKey = normalizeKey(c.ClearKey, def.ClearKey)
	c.QuitKey = normalizeKey(c.QuitKey, def.QuitKey)
	if c.SaveKey == c.ClearKey || c.SaveKey == c.QuitKey || c.ClearKey == c.QuitKey {
		c.SaveKey, c.ClearKey, c.QuitKey = def.SaveKey, def.ClearKey, def.QuitKey
	}
	return nil
}

// normalizeKey keeps single ASCII letter or digit bindings only. Those are the
// characters Tk reports with a keysym equal to the character itself; "." for
// example arrives as "period" and would never match.
func normalizeKey(k, fallback string) string {
	k = strings.TrimSpace(k)
	if len(k) != 1 {
		return fallback
	}
	switch b := k[0]; {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return k
	}
	return fallback
}

// StrokeColor returns LineColor as a color.Color, falling back to green.
func (c *Config) StrokeColor() color.Color {
	if c != nil {
		if col, err := colorful.Hex(c.LineColor); err == nil {
			return col.Clamped()
		}
	}
	return color.RGBA{0, 255, 0, 255}
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
