package rules

import "testing"

func TestPhoneticRules(t *testing.T) {
	tests := []struct {
		name  string
		rule  func(string) string
		input string
		want  string
	}{
		{"consonantal o before vowel sign", ConsonantalO, "ওা", "वা"},
		{"o alone stays", ConsonantalO, "ও", "ও"},
		{"o before consonant stays", ConsonantalO, "ওক", "ওক"},
		{"initial e", InitialEGlide, "এক", "येক"},
		{"initial e after space", InitialEGlide, "এক এক", "येক येক"},
		{"initial e after punctuation", InitialEGlide, "(এক", "(येক"},
		{"medial e stays", InitialEGlide, "সেএ", "সেএ"},
		{"ya before aa", YaBeforeAa, "যা", "जা"},
		{"ya before i stays", YaBeforeAa, "যি", "যি"},
		{"nukta da", NuktaConsonants, "বাড়ি", "বাड़ি"},
		{"nukta dha", NuktaConsonants, "ঢ়", "ढ़"},
		{"nasal dentalized", DentalizeNasal, "কণ", "কন"},
		{"nasal after retroflex stays", DentalizeNasal, "ষণ", "ষণ"},
		{"nasal at start dentalized", DentalizeNasal, "ণ", "ন"},
		{"velar nasal", ClassNasals, "ঙক", "ङ्ক"},
		{"velar nasal before palatal stays", ClassNasals, "ঙচ", "ঙচ"},
		{"palatal nasal", ClassNasals, "ঞচ", "ञ्চ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule(tt.input); got != tt.want {
				t.Errorf("rule(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSpecialRules(t *testing.T) {
	tests := []struct {
		name  string
		rule  func(string) string
		input string
		want  string
	}{
		{"half ra", HalfRa, "কর", "ক्र"},
		{"ra after ra stays", HalfRa, "রর", "রর"},
		{"ra after virama stays", HalfRa, "প্র", "প্র"},
		{"half ya", HalfYa, "কয", "ক्य"},
		{"ya after ya stays", HalfYa, "যয", "যয"},
		{"khanda ta", KhandaTa, "হঠাৎ", "হঠাत्"},
		{"final visarga", FinalVisarga, "নমঃ", "নমह"},
		{"final visarga before danda", FinalVisarga, "নমঃ।", "নমह।"},
		{"medial visarga stays", FinalVisarga, "দুঃখ", "দুঃখ"},
		{"chandrabindu reordered", ChandrabinduOrder, "কাঁদা", "কँাদা"},
		{"chandrabindu after consonant stays", ChandrabinduOrder, "কঁ", "কঁ"},
		{"medial ba", MedialBa, "বাব", "বাव"},
		{"ba after space stays", MedialBa, "ক ব", "ক ব"},
		{"ba after consonant", MedialBa, "কব", "কव"},
		{"retroflex nasal", RetroflexNasal, "কণ", "কन"},
		{"nasal after retroflex stays", RetroflexNasal, "ষণ", "ষণ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule(tt.input); got != tt.want {
				t.Errorf("rule(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRuleListsAreNamed(t *testing.T) {
	for _, rule := range append(PhoneticRules(), SpecialRules()...) {
		if rule.Name == "" || rule.Apply == nil {
			t.Errorf("incomplete rule: %+v", rule)
		}
	}
	if len(PhoneticRules()) != 6 {
		t.Errorf("expected 6 phonetic rules, got %d", len(PhoneticRules()))
	}
	if len(SpecialRules()) != 7 {
		t.Errorf("expected 7 special rules, got %d", len(SpecialRules()))
	}
}
