// Package labels holds the user-facing strings of the settings editor in
// English, Simplified Chinese and Traditional Chinese.
package labels

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Labels is one language's set of strings.
type Labels struct {
	Title string

	// Section headings.
	Language, Display, Audio, Logging string

	GamePath, MessageFile, FontFile, LogFile, LogLevel string

	TouchOverlay, KeepAspect, FullScreen, EnableAVI, EnableGLSL, EnableHDR string
	TextureSize, WindowSize, ShaderFile                                    string

	CD, BGM, OPL, OPLCore, OPLChip, MIDISynth, SoundBank string
	SampleRate, Stereo, OPLRate, Surround              string
	MusicVolume, SoundVolume, Buffer, Quality          string

	Exit, Launch, Default, Revert string

	// Levels names LogLevel values 0 through 5.
	Levels []string
}

var english = Labels{
	Title:    "SDLPAL Launcher",
	Language: "Language & Font",
	Display:  "Display",
	Audio:    "Audio",
	Logging:  "Logging",

	GamePath:    "Game folder:",
	MessageFile: "Localization file:",
	FontFile:    "Font file:",
	LogFile:     "Log file:",
	LogLevel:    "Log level:",

	TouchOverlay: "Touch overlay",
	KeepAspect:   "Keep aspect ratio",
	FullScreen:   "Full screen",
	EnableAVI:    "Enable AVI",
	EnableGLSL:   "Enable GLSL",
	EnableHDR:    "Enable HDR",
	TextureSize:  "Texture size:",
	WindowSize:   "Window size:",
	ShaderFile:   "Shader file:",

	CD:        "CD src:",
	BGM:       "BGM src:",
	OPL:       "OPL type:",
	OPLCore:   "OPL core:",
	OPLChip:   "OPL chip:",
	MIDISynth: "MIDI synth:",
	SoundBank: "SoundBank:",

	SampleRate:  "Sample rate:",
	Stereo:      "Stereo",
	OPLRate:     "OPL rate:",
	Surround:    "Surround OPL",
	MusicVolume: "Music volume:",
	SoundVolume: "Sound volume:",
	Buffer:      "Buffer:",
	Quality:     "Quality:",

	Exit:    "Exit",
	Launch:  "Launch game",
	Default: "Default",
	Revert:  "Revert",

	Levels: []string{"Verbose", "Debug", "Informational", "Warning", "Error", "Fatal"},
}

var simplifiedChinese = Labels{
	Title:    "SDLPAL 启动器",
	Language: "字体及语言设置",
	Display:  "显示设置",
	Audio:    "音频设置",
	Logging:  "日志记录设置",

	GamePath:    "游戏资源目录：",
	MessageFile: "语言文件：",
	FontFile:    "字体文件：",
	LogFile:     "日志文件：",
	LogLevel:    "日志记录级别：",

	TouchOverlay: "启用触屏辅助",
	KeepAspect:   "保持纵横比",
	FullScreen:   "全屏模式",
	EnableAVI:    "AVI 动画",
	EnableGLSL:   "启用 GLSL",
	EnableHDR:    "启用 HDR",
	TextureSize:  "纹理尺寸：",
	WindowSize:   "窗口尺寸：",
	ShaderFile:   "着色器代码：",

	CD:        "CD 源：",
	BGM:       "BGM 源：",
	OPL:       "OPL 类型：",
	OPLCore:   "OPL 核心：",
	OPLChip:   "OPL 芯片：",
	MIDISynth: "MIDI 合成器：",
	SoundBank: "音色库：",

	SampleRate:  "采样率：",
	Stereo:      "立体声",
	OPLRate:     "OPL 采样率：",
	Surround:    "环绕声 OPL",
	MusicVolume: "音乐音量：",
	SoundVolume: "音效音量：",
	Buffer:      "缓冲区：",
	Quality:     "质量：",

	Exit:    "退出",
	Launch:  "启动游戏",
	Default: "默认设置",
	Revert:  "撤销修改",

	Levels: []string{"详细信息", "调试信息", "运行信息", "普通警告", "严重错误", "致命错误"},
}

var traditionalChinese = Labels{
	Title:    "SDLPAL 啟動器",
	Language: "字體及語言設定",
	Display:  "顯示設定",
	Audio:    "音訊設定",
	Logging:  "日誌記錄設定",

	GamePath:    "遊戲資源檔夾：",
	MessageFile: "語言檔：",
	FontFile:    "字體檔：",
	LogFile:     "日誌檔：",
	LogLevel:    "日誌記錄級別：",

	TouchOverlay: "啟用觸屏輔助",
	KeepAspect:   "保持縱橫比",
	FullScreen:   "全屏模式",
	EnableAVI:    "AVI 動畫",
	EnableGLSL:   "啟用 GLSL",
	EnableHDR:    "啟用 HDR",
	TextureSize:  "紋理尺寸：",
	WindowSize:   "視窗尺寸：",
	ShaderFile:   "著色器代碼：",

	CD:        "CD 源：",
	BGM:       "BGM 源：",
	OPL:       "OPL 類型：",
	OPLCore:   "OPL 核心：",
	OPLChip:   "OPL 晶片：",
	MIDISynth: "MIDI 合成器：",
	SoundBank: "音色庫：",

	SampleRate:  "取樣速率：",
	Stereo:      "立體聲",
	OPLRate:     "OPL 取樣速率：",
	Surround:    "環繞聲 OPL",
	MusicVolume: "音樂音量：",
	SoundVolume: "音效音量：",
	Buffer:      "緩衝區：",
	Quality:     "品質：",

	Exit:    "退出",
	Launch:  "啟動遊戲",
	Default: "默認設定",
	Revert:  "撤銷修改",

	Levels: []string{"詳細信息", "調試信息", "運行信息", "普通警告", "嚴重錯誤", "致命錯誤"},
}

var (
	supported = []language.Tag{language.English, language.SimplifiedChinese, language.TraditionalChinese}
	tables    = []*Labels{&english, &simplifiedChinese, &traditionalChinese}
	matcher   = language.NewMatcher(supported)
)

// English returns a copy of the English labels.
func English() *Labels { return english.clone() }

// FromEnv selects labels from the LANG environment variable.
func FromEnv() *Labels {
	return Match(os.Getenv("LANG"))
}

// Match selects labels for a POSIX locale such as "zh_TW.UTF-8". Anything
// that does not resolve to Chinese gets English.
func Match(locale string) *Labels {
	tag, ok := parseLocale(locale)
	if !ok {
		return English()
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return English()
	}
	return tables[index].clone()
}

// clone copies l so callers can change their labels without touching the
// package tables.
func (l *Labels) clone() *Labels {
	c := *l
	c.Levels = append([]string(nil), l.Levels...)
	return &c
}

// parseLocale turns "ll_CC.charset@modifier" into a BCP 47 tag.
func parseLocale(locale string) (language.Tag, bool) {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
