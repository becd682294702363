package config

import (
	"fmt"
	"strings"
)

// Platform is the device the launcher targets.
type Platform string

const (
	PlatformPC      Platform = "pc"
	PlatformPandora Platform = "pandora"
	PlatformPyra    Platform = "pyra"
)

// Version selects the game release whose settings are edited.
type Version string

const (
	// VersionClassic is the field list of the first pandora launcher.
	VersionClassic Version = "classic"
	VersionV2017   Version = "v2017"
	VersionGit     Version = "git"
)

// KeyLaunchSetting controls whether the settings editor is shown before the
// game starts. "0" means launch straight away.
const KeyLaunchSetting = "LaunchSetting"

// Platforms lists the supported platforms.
func Platforms() []Platform {
	return []Platform{PlatformPC, PlatformPandora, PlatformPyra}
}

// Versions lists the supported versions.
func Versions() []Version {
	return []Version{VersionClassic, VersionV2017, VersionGit}
}

// Profile selects the entry list and defaults for one platform and version.
type Profile struct {
	Platform Platform
	Version  Version
}

func (p Profile) String() string {
	return string(p.Platform) + "/" + string(p.Version)
}

// IsHandheld reports whether the platform is a handheld console.
func (p Profile) IsHandheld() bool {
	return p.Platform == PlatformPandora || p.Platform == PlatformPyra
}

// Profiles returns every supported combination of platform and version.
func Profiles() []Profile {
	var out []Profile
	for _, platform := range Platforms() {
		for _, version := range Versions() {
			out = append(out, Profile{Platform: platform, Version: version})
		}
	}
	return out
}

// ParseProfile validates platform and version names, ignoring case.
func ParseProfile(platform, version string) (Profile, error) {
	p := Profile{
		Platform: Platform(strings.ToLower(strings.TrimSpace(platform))),
		Version:  Version(strings.ToLower(strings.TrimSpace(version))),
	}
	if !contains(Platforms(), p.Platform) {
		return Profile{}, fmt.Errorf("%w: platform %q (valid: pc, pandora, pyra)", ErrUnknownProfile, platform)
	}
	if !contains(Versions(), p.Version) {
		return Profile{}, fmt.Errorf("%w: version %q (valid: classic, v2017, git)", ErrUnknownProfile, version)
	}
	return p, nil
}

func contains[T comparable](ss []T, s T) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

// definition is one (name, format, default) triple of a profile.
type definition struct {
	name, format, def string
}

// definitions returns the ordered entry definitions of p.
func (p Profile) definitions() []definition {
	pick := func(handheld, desktop string) string {
		if p.IsHandheld() {
			return handheld
		}
		return desktop
	}
	git := p.Version == VersionGit

	var defs []definition
	add := func(name, format, def string) {
		defs = append(defs, definition{name, format, def})
	}

	if p.Version == VersionClassic {
		add("KeepAspectRatio", "1/0", pick("0", "1"))
		add("FullScreen", "1/0", pick("1", "0"))
		add("LaunchSetting", "1/0", "1")
		add("Stereo", "1/0", "1")
		add("UseSurroundOPL", "1/0", pick("0", "1"))
		add("UseTouchOverlay", "1/0", "0")

		add("SurroundOPLOffset", "-2147483648-2147483647", "384")
		add("LogLevel", "0-5", "5")

		add("AudioBufferSize", "2-32768", "1024")
		add("OPLSampleRate", "0-4294967295", "49716")
		add("ResampleQuality", "0-4", pick("2", "4"))
		add("SampleRate", "0-48000", "44100")
		add("MusicVolume", "0-100", "100")
		add("SoundVolume", "0-100", "100")
		add("WindowHeight", "0-4294967295", pick("800", "640"))
		add("WindowWidth", "0-4294967295", pick("480", "400"))

		add("CD", "OGG/MP3", "OGG")
		add("Music", "MIDI/SOFTMIDI/RIX/MP3/OGG", "RIX")
		add("OPL", "DOSBOX/MAME/DOSBOXNEW", "DOSBOX")

		add("GamePath", "*", "")
		add("SavePath", "*", "")
		add("MessageFileName", "*", "")
		add("FontFileName", "*", "")
		add("LogFileName", "*", "")
		add("CLIMIDIPlayer", "*", "")
		return defs
	}

	add("KeepAspectRatio", "1/0", pick("0", "1"))
	add("FullScreen", "1/0", pick("1", "0"))
	add("LaunchSetting", "1/0", "1")
	add("Stereo", "1/0", "1")
	add("UseSurroundOPL", "1/0", pick("0", "1"))
	add("EnableKeyRepeat", "1/0", "0")
	add("UseTouchOverlay", "1/0", "0")
	add("EnableAviPlay", "1/0", "1")
	if git {
		add("EnableGLSL", "1/0", "0")
		add("EnableHDR", "1/0", "0")
	}

	add("SurroundOPLOffset", "-2147483648-2147483647", "384")
	add("LogLevel", "0-5", "5")
	if git {
		add("AudioDevice", "-2147483648-2147483647", "-1")
	}

	add("AudioBufferSize", "2-32768", "1024")
	add("OPLSampleRate", "0-4294967295", "49716")
	add("ResampleQuality", "0-4", pick("3", "4"))
	add("SampleRate", "0-48000", "44100")
	add("MusicVolume", "0-100", "100")
	add("SoundVolume", "0-100", "100")
	add("WindowHeight", "0-4294967295", pick("200", "400"))
	add("WindowWidth", "0-4294967295", pick("320", "640"))
	if git {
		add("TextureHeight", "0-4294967295", pick("200", "400"))
		add("TextureWidth", "0-4294967295", pick("320", "640"))
	}

	if git {
		add("CD", "NONE/MP3/OGG/OPUS", "NONE")
		add("Music", "MIDI/RIX/MP3/OGG/OPUS", "RIX")
		add("OPLCore", "MAME/DBFLT/DBINT/NUKED", "DBFLT")
		add("OPLChip", "OPL2/OPL3", "OPL2")
		add("MIDISynth", "native/wildmidi/timidity/tinysoundfont", "native")
		add("SoundBank", "*", "")
	} else {
		add("CD", "MP3/OGG", "OGG")
		add("Music", "MIDI/SOFTMIDI/RIX/MP3/OGG", "RIX")
		add("OPL", "DOSBOX/MAME/DOSBOXNEW", "DOSBOX")
	}

	add("GamePath", "*", "")
	add("SavePath", "*", "")
	if git {
		add("ShaderPath", "*", "")
	}
	add("MessageFileName", "*", "")
	add("FontFileName", "*", "")
	add("LogFileName", "*", "")
	add("RIXExtraInit", "*", "")
	add("MIDIClient", "*", "")
	add("ScaleQuality", "*", "0")
	if git {
		add("Shader", "*", "")
	} else {
		add("AspectRatio", "*", "16:10")
	}
	return defs
}

// NewStoreForProfile builds the store holding p's entries in file order.
func NewStoreForProfile(p Profile, opts ...Option) (*Store, error) {
	s := NewStore(opts...)
	for _, d := range p.definitions() {
		if err := s.AddEntry(d.name, d.format, d.def); err != nil {
			return nil, fmt.Errorf("profile %s: %w", p, err)
		}
	}
	return s, nil
}

// MarkLaunched records that the game is being started from the launcher:
// LaunchSetting becomes "0" and the store is saved to path. The next start
// then skips the settings editor.
func MarkLaunched(s *Store, path string) error {
	if err := s.SetEntryValue(KeyLaunchSetting, "0"); err != nil {
		return err
	}
	return s.Save(path)
}

// SkipsEditor reports whether the loaded settings ask to start the game
// without showing the settings editor.
func SkipsEditor(s *Store) bool {
	v, err := s.EntryValue(KeyLaunchSetting)
	return err == nil && v == "0"
}
