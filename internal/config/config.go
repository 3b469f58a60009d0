// Package config loads the optional TOML style catalog that controls the
// [V4+ Styles] block of generated and restyled documents.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"subconv/internal/subtitle"
)

//go:embed sample_styles.toml
var sampleStyles string

// Script mirrors the [script] table of a catalog file.
type Script struct {
	Title    string `toml:"title"`
	PlayResX int    `toml:"play_res_x"`
	PlayResY int    `toml:"play_res_y"`
}

// StyleEntry mirrors one [[styles]] table. Fields follow the ASS style
// Format column order.
type StyleEntry struct {
	Name            string  `toml:"name"`
	Fontname        string  `toml:"fontname"`
	Fontsize        int     `toml:"fontsize"`
	PrimaryColour   string  `toml:"primary_colour"`
	SecondaryColour string  `toml:"secondary_colour"`
	OutlineColour   string  `toml:"outline_colour"`
	BackColour      string  `toml:"back_colour"`
	Bold            int     `toml:"bold"`
	Italic          int     `toml:"italic"`
	Underline       int     `toml:"underline"`
	StrikeOut       int     `toml:"strike_out"`
	ScaleX          int     `toml:"scale_x"`
	ScaleY          int     `toml:"scale_y"`
	Spacing         int     `toml:"spacing"`
	Angle           int     `toml:"angle"`
	BorderStyle     int     `toml:"border_style"`
	Outline         float64 `toml:"outline"`
	Shadow          float64 `toml:"shadow"`
	Alignment       int     `toml:"alignment"`
	MarginL         int     `toml:"margin_l"`
	MarginR         int     `toml:"margin_r"`
	MarginV         int     `toml:"margin_v"`
	Encoding        int     `toml:"encoding"`
}

// Catalog is the top level of a style catalog file.
type Catalog struct {
	Script Script       `toml:"script"`
	Styles []StyleEntry `toml:"styles"`
}

// Load reads a style catalog from path. An empty path returns the
// built-in catalog.
func Load(path string) (*subtitle.StyleSet, error) {
	if path == "" {
		return subtitle.DefaultStyleSet(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style catalog: %w", err)
	}

	var catalog Catalog
	if err := toml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse style catalog: %w", err)
	}

	return catalog.StyleSet()
}

// StyleSet validates the catalog and converts it to the converter's
// representation.
func (c *Catalog) StyleSet() (*subtitle.StyleSet, error) {
	if len(c.Styles) == 0 {
		return nil, errors.New("style catalog defines no styles")
	}

	set := &subtitle.StyleSet{
		Script: subtitle.ScriptInfo{
			Title:    c.Script.Title,
			PlayResX: c.Script.PlayResX,
			PlayResY: c.Script.PlayResY,
		},
	}
	if set.Script.Title == "" {
		set.Script.Title = "Converted Subtitles"
	}
	if set.Script.PlayResX == 0 {
		set.Script.PlayResX = 1280
	}
	if set.Script.PlayResY == 0 {
		set.Script.PlayResY = 720
	}

	for i, entry := range c.Styles {
		if entry.Name == "" {
			return nil, fmt.Errorf("style %d is missing a name", i+1)
		}
		set.Styles = append(set.Styles, subtitle.Style{
			Name:            entry.Name,
			Fontname:        entry.Fontname,
			Fontsize:        entry.Fontsize,
			PrimaryColour:   entry.PrimaryColour,
			SecondaryColour: entry.SecondaryColour,
			OutlineColour:   entry.OutlineColour,
			BackColour:      entry.BackColour,
			Bold:            entry.Bold,
			Italic:          entry.Italic,
			Underline:       entry.Underline,
			StrikeOut:       entry.StrikeOut,
			ScaleX:          entry.ScaleX,
			ScaleY:          entry.ScaleY,
			Spacing:         entry.Spacing,
			Angle:           entry.Angle,
			BorderStyle:     entry.BorderStyle,
			Outline:         entry.Outline,
			Shadow:          entry.Shadow,
			Alignment:       entry.Alignment,
			MarginL:         entry.MarginL,
			MarginR:         entry.MarginR,
			MarginV:         entry.MarginV,
			Encoding:        entry.Encoding,
		})
	}

	return set, nil
}

// WriteSample writes the embedded sample catalog to path. Refuses to
// overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite existing file: %s", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(sampleStyles), 0644); err != nil {
		return fmt.Errorf("failed to write sample catalog: %w", err)
	}
	return nil
}
