// Package report renders decoded movie headers for people and tools.
package report

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/ugparu/dtminfo/format/dtm"
	"github.com/ugparu/dtminfo/utils"
)

// Format selects how headers are rendered.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat maps a user supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, JSON, YAML:
		return f, nil
	default:
		return "", utils.UnsupportedFormatError{Format: s}
	}
}

// Entry is one decoded file.
type Entry struct {
	Path   string     `json:"path" yaml:"path"`
	Header dtm.Header `json:"header" yaml:"header"`
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Write renders entries to w. Text output separates files with a blank line;
// JSON and YAML emit a single document holding a list.
func Write(w io.Writer, format Format, entries []Entry) error {
	switch format {
	case Text:
		for i, e := range entries {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if len(entries) > 1 {
				if _, err := fmt.Fprintf(w, "==> %s <==\n", e.Path); err != nil {
					return err
				}
			}
			if err := WriteText(w, e.Header); err != nil {
				return err
			}
		}
		return nil
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	default:
		return utils.UnsupportedFormatError{Format: string(format)}
	}
}

type line struct {
	label string
	value any
}

// WriteText prints one "label : value" line per header field.
func WriteText(w io.Writer, h dtm.Header) error {
	lines := []line{
		{"Game ID", h.GameID},
		{"Is Wii game", h.IsWiiGame},
		{"Number of connected controllers", h.ConnectedControllers},
		{"Is from a save state", h.IsFromSaveState},
		{"Frame count", h.FrameCount},
		{"Input frames", h.InputFrameCount},
		{"Lag frames", h.LagFrameCount},
		{"Unique ID", h.UniqueID},
		{"Number of re-records", h.NumRerecords},
		{"Author name", h.Author},
		{"Video backend", h.VideoBackend},
		{"Audio emulator", h.AudioEmulator},
		{"MD5", h.MD5},
		{"Recording start time", fmt.Sprintf("%d seconds", h.RecordingStartTime)},
		{"Using a saved config", h.IsSavedConfig},
		{"Using idle skipping", h.UsingIdleSkip},
		{"Using dual core", h.UsingDualCore},
		{"Using progressive scan", h.UsingProgressiveScan},
		{"Using DSP HLE", h.UsingHLEDSP},
		{"Using fast disc speed", h.UsingFastDiscSpeed},
		{"CPU Core", h.CPUCore},
		{"EFB access enabled", h.IsEFBAccessEnabled},
		{"EFB copies enabled", h.IsEFBCopiesEnabled},
		{"Using EFB to texture", h.UsingEFBToTexture},
		{"Using EFB copy cache", h.IsEFBCopyCacheEnabled},
		{"Emulate EFB format changes", h.IsEmulatingEFBFormatChanges},
		{"Using XFB", h.UsingXFB},
		{"Using Real XFB", h.UsingRealXFB},
		{"Using memory card", h.UsingMemoryCard},
		{"Create new memcard on playback", h.UsingClearSaves},
		{"Bongos", h.Bongos},
		{"Synchronize GPU", h.SyncGPU},
		{"Using NetPlay", h.UsingNetplay},
		{"Second disc name", h.SecondDiscName},
		{"Revision", h.GitRevision},
		{"DSP IROM hash", fmt.Sprintf("%X", h.DSPIROMHash)},
		{"DSP coef hash", fmt.Sprintf("%X", h.DSPCoefHash)},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%-31s: %v\n", l.label, l.value); err != nil {
			return err
		}
	}
	return nil
}
