package tui

import (
	"palcfg/internal/config"
	"palcfg/internal/labels"
)

type widget int

const (
	widgetCheck widget = iota
	widgetCombo
	widgetScale
	widgetText
)

type field struct {
	name   string
	label  string
	widget widget
	// names labels combo values by index; nil shows the raw value.
	names []string
}

type section struct {
	title  string
	fields []field
}

// layout arranges the entries of store the way the launcher window does.
// Entries missing from the profile are skipped, and so are sections left
// empty by that.
func layout(store *config.Store, profile config.Profile, l *labels.Labels) []section {
	desktop := !profile.IsHandheld()

	check := func(name, label string) field { return field{name: name, label: label, widget: widgetCheck} }
	combo := func(name, label string) field { return field{name: name, label: label, widget: widgetCombo} }
	scale := func(name, label string) field { return field{name: name, label: label, widget: widgetScale} }
	text := func(name, label string) field { return field{name: name, label: label, widget: widgetText} }

	display := []field{check("EnableAviPlay", l.EnableAVI)}
	if profile.Platform != config.PlatformPandora {
		display = append([]field{check("KeepAspectRatio", l.KeepAspect)}, display...)
	}
	if desktop {
		display = append([]field{check("UseTouchOverlay", l.TouchOverlay)}, display...)
		display = append(display,
			check("FullScreen", l.FullScreen),
			check("EnableGLSL", l.EnableGLSL),
			check("EnableHDR", l.EnableHDR),
			text("WindowWidth", l.WindowSize),
			text("WindowHeight", "×"),
			text("TextureWidth", l.TextureSize),
			text("TextureHeight", "×"),
			text("Shader", l.ShaderFile),
		)
	}

	all := []section{
		{fields: []field{text("GamePath", l.GamePath)}},
		{title: l.Language, fields: []field{
			text("MessageFileName", l.MessageFile),
			text("FontFileName", l.FontFile),
		}},
		{title: l.Logging, fields: []field{
			{name: "LogLevel", label: l.LogLevel, widget: widgetCombo, names: l.Levels},
			text("LogFileName", l.LogFile),
		}},
		{title: l.Display, fields: display},
		{title: l.Audio, fields: []field{
			combo("CD", l.CD),
			combo("Music", l.BGM),
			check("Stereo", l.Stereo),
			text("SampleRate", l.SampleRate),
			combo("OPL", l.OPL),
			combo("OPLCore", l.OPLCore),
			combo("OPLChip", l.OPLChip),
			text("OPLSampleRate", l.OPLRate),
			check("UseSurroundOPL", l.Surround),
			text("AudioBufferSize", l.Buffer),
			combo("MIDISynth", l.MIDISynth),
			text("SoundBank", l.SoundBank),
			scale("ResampleQuality", l.Quality),
			scale("MusicVolume", l.MusicVolume),
			scale("SoundVolume", l.SoundVolume),
		}},
	}

	var out []section
	for _, s := range all {
		var kept []field
		for _, f := range s.fields {
			if store.HasEntry(f.name) {
				kept = append(kept, f)
			}
		}
		if len(kept) > 0 {
			out = append(out, section{title: s.title, fields: kept})
		}
	}
	return out
}
