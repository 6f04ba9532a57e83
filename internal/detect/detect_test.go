package detect

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Lang
	}{
		{"empty string", "", English},
		{"whitespace only", "   \n\t", English},
		{"digits and punctuation", "12345 !?.", English},
		{"plain english", "How much does shipping cost?", English},
		{"plain thai", "สวัสดีครับ", Thai},
		{"plain myanmar", "မင်္ဂလာပါ", Myanmar},
		{"mixed low shares", "abc ก ခ", English},
		{"thai exactly at threshold", "กกกกกกกabc", English}, // 7/10 is not > 0.7
		{"thai above threshold", "กกกกกกกกab", Thai},         // 8/10
		{"myanmar above threshold", "ခခခခခခခခab", Myanmar},
		{"thai with digits and spaces", "ราคา 250 บาท ครับ", Thai},
		{"english with a little thai", "please translate ก", English},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.in); got != tt.want {
				t.Errorf("Detect(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestTargets(t *testing.T) {
	tests := []struct {
		source Lang
		want   [2]Lang
	}{
		{English, [2]Lang{Thai, Myanmar}},
		{Thai, [2]Lang{English, Myanmar}},
		{Myanmar, [2]Lang{English, Thai}},
	}
	for _, tt := range tests {
		got := tt.source.Targets()
		if len(got) != 2 {
			t.Fatalf("%s.Targets() returned %d languages", tt.source, len(got))
		}
		if got[0] != tt.want[0] || got[1] != tt.want[1] {
			t.Errorf("%s.Targets() = %v, want %v", tt.source, got, tt.want)
		}
		for _, target := range got {
			if target == tt.source {
				t.Errorf("%s.Targets() contains the source language", tt.source)
			}
		}
	}
}

func TestFlag(t *testing.T) {
	for _, l := range []Lang{English, Thai, Myanmar} {
		if l.Flag() == "" {
			t.Errorf("%s.Flag() is empty", l)
		}
	}
}
