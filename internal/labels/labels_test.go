package labels

import (
	"reflect"
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		locale string
		want   *Labels
	}{
		{"", &english},
		{"C", &english},
		{"POSIX", &english},
		{"en_US.UTF-8", &english},
		{"fr_FR.UTF-8", &english},
		{"zh_CN.UTF-8", &simplifiedChinese},
		{"zh_SG", &simplifiedChinese},
		{"zh-Hans", &simplifiedChinese},
		{"zh_TW.UTF-8", &traditionalChinese},
		{"zh_HK.Big5", &traditionalChinese},
		{"zh-Hant", &traditionalChinese},
		{"not a locale!", &english},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			if got := Match(tt.locale); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Match(%q) = %q, want %q", tt.locale, got.Title, tt.want.Title)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LANG", "zh_TW.UTF-8")
	if got := FromEnv(); !reflect.DeepEqual(got, &traditionalChinese) {
		t.Errorf("FromEnv() = %q, want traditional Chinese", got.Title)
	}
}

func TestTablesComplete(t *testing.T) {
	for i, l := range tables {
		if len(l.Levels) != 6 {
			t.Errorf("table %d has %d level names, want 6", i, len(l.Levels))
		}
		for _, s := range []string{l.Title, l.Language, l.Display, l.Audio, l.Logging, l.Launch, l.Exit} {
			if s == "" {
				t.Errorf("table %d has an empty label", i)
			}
		}
	}
}

func TestReturnedLabelsAreCopies(t *testing.T) {
	l := English()
	l.Title = "changed"
	l.Levels[0] = "changed"
	if English().Title == "changed" || english.Levels[0] == "changed" {
		t.Error("changing returned labels altered the English table")
	}

	zh := Match("zh_CN.UTF-8")
	zh.Levels[5] = "changed"
	if Match("zh_CN.UTF-8").Levels[5] == "changed" {
		t.Error("changing matched labels altered the Chinese table")
	}
}
