package rules

// SoundChange is the te/ta allomorph produced by a godan ending.
type SoundChange struct {
	Te string
	Ta string
}

// SoundChanges maps each godan dictionary ending to its te/ta-form.
// It is used for te, ta and every form built on them (tara, teiru, te-kudasai).
var SoundChanges = map[string]SoundChange{
	"う": {Te: "って", Ta: "った"},
	"つ": {Te: "って", Ta: "った"},
	"る": {Te: "って", Ta: "った"},
	"ぬ": {Te: "んで", Ta: "んだ"},
	"ぶ": {Te: "んで", Ta: "んだ"},
	"む": {Te: "んで", Ta: "んだ"},
	"く": {Te: "いて", Ta: "いた"},
	"ぐ": {Te: "いで", Ta: "いだ"},
	"す": {Te: "して", Ta: "した"},
}

// VowelRow is the a/i/e/o grade of one godan ending's kana row.
type VowelRow struct {
	A, I, E, O string
}

// Rows maps each godan dictionary ending to its vowel grades.
// う takes わ in the a-grade (買わない).
var Rows = map[string]VowelRow{
	"う": {A: "わ", I: "い", E: "え", O: "お"},
	"く": {A: "か", I: "き", E: "け", O: "こ"},
	"ぐ": {A: "が", I: "ぎ", E: "げ", O: "ご"},
	"す": {A: "さ", I: "し", E: "せ", O: "そ"},
	"つ": {A: "た", I: "ち", E: "て", O: "と"},
	"ぬ": {A: "な", I: "に", E: "ね", O: "の"},
	"ぶ": {A: "ば", I: "び", E: "べ", O: "ぼ"},
	"む": {A: "ま", I: "み", E: "め", O: "も"},
	"る": {A: "ら", I: "り", E: "れ", O: "ろ"},
}

// IsGodanEnding reports whether s is a valid godan terminal kana.
func IsGodanEnding(s string) bool {
	_, ok := Rows[s]
	return ok
}

// GodanStem returns the kana attached to a godan stem for grade g.
func GodanStem(ending string, g Grade) (string, bool) {
	row, ok := Rows[ending]
	if !ok {
		return "", false
	}
	sc := SoundChanges[ending]

	switch g {
	case GradeU:
		return ending, true
	case GradeA:
		return row.A, true
	case GradeI:
		return row.I, true
	case GradeE:
		return row.E, true
	case GradeO:
		return row.O, true
	case GradeTe:
		return sc.Te, true
	case GradeTa:
		return sc.Ta, true
	}
	return "", false
}

// IchidanStem returns the kana attached to an ichidan stem for grade g.
// Every grade except the dictionary, te and ta grades is the bare stem.
func IchidanStem(g Grade) string {
	switch g {
	case GradeU:
		return "る"
	case GradeTe:
		return "て"
	case GradeTa:
		return "た"
	}
	return ""
}
