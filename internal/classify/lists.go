package classify

import (
	"sort"
	"unicode/utf8"

	"github.com/f3rmion/katsuyou/internal/verb"
)

// knownEntry is a hard-coded verdict for a surface form whose shape would
// otherwise be misread by the suffix and row checks.
type knownEntry struct {
	surface string
	reading string
	typ     verb.VerbType
}

// knownEntries merges godanLookalikes and ichidanKnown, longest surface
// first so that a compound tail wins over a shorter one.
var knownEntries = func() []knownEntry {
	var out []knownEntry
	for s, r := range godanLookalikes {
		out = append(out, knownEntry{surface: s, reading: r, typ: verb.Godan})
	}
	for s, r := range ichidanKnown {
		out = append(out, knownEntry{surface: s, reading: r, typ: verb.Ichidan})
	}
	sort.Slice(out, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(out[i].surface), utf8.RuneCountInString(out[j].surface)
		if li != lj {
			return li > lj
		}
		return out[i].surface < out[j].surface
	})
	return out
}()

// godanLookalikes end in -iru/-eru (or in する) but conjugate as godan.
// Kanji entries also match as the tail of a compound (気に入る, 持ち帰る).
var godanLookalikes = map[string]string{
	"入る": "はいる", "走る": "はしる", "帰る": "かえる", "返る": "かえる", "要る": "いる",
	"切る": "きる", "知る": "しる", "限る": "かぎる", "蹴る": "ける",
	"滑る": "すべる", "握る": "にぎる", "減る": "へる", "参る": "まいる",
	"混じる": "まじる", "交じる": "まじる", "焦る": "あせる", "湿る": "しめる",
	"喋る": "しゃべる", "練る": "ねる", "散る": "ちる", "茂る": "しげる",
	"覆る": "くつがえる", "遮る": "さえぎる", "照る": "てる", "陥る": "おちいる",
	"嘲る": "あざける", "罵る": "ののしる", "捻る": "ひねる", "耽る": "ふける",
	"翻る": "ひるがえる", "蘇る": "よみがえる", "甦る": "よみがえる", "煎る": "いる",
	"弄る": "いじる", "齧る": "かじる", "抉る": "えぐる", "猛る": "たける",
	"詰る": "なじる", "競る": "せる", "毟る": "むしる", "漲る": "みなぎる",
	"捩じる": "ねじる", "野次る": "やじる", "愚痴る": "ぐちる", "擦る": "こする",
	"摩る": "さする", "掠る": "かする",

	"はいる": "はいる", "はしる": "はしる", "しゃべる": "しゃべる", "すべる": "すべる",
	"にぎる": "にぎる", "かぎる": "かぎる", "まいる": "まいる", "あせる": "あせる",
	"ちる": "ちる", "しげる": "しげる", "ける": "ける", "しる": "しる",
	"いじる": "いじる", "かじる": "かじる", "えぐる": "えぐる", "ひねる": "ひねる",
	"ののしる": "ののしる", "よみがえる": "よみがえる", "くつがえる": "くつがえる",
	"さえぎる": "さえぎる", "おちいる": "おちいる", "あざける": "あざける",
	"ひるがえる": "ひるがえる", "まじる": "まじる", "むしる": "むしる",
	"みなぎる": "みなぎる", "なじる": "なじる", "ねじる": "ねじる", "やじる": "やじる",
	"ぐちる": "ぐちる", "こする": "こする", "さする": "さする", "かする": "かする",
}

// ichidanKnown lists ichidan verbs whose mora before る is written in
// kanji, so the row check needs the reading, plus 出来る, which ends in
// 来る without being a kuru compound.
var ichidanKnown = map[string]string{
	"見る": "みる", "着る": "きる", "寝る": "ねる", "出る": "でる",
	"居る": "いる", "煮る": "にる", "似る": "にる", "得る": "える",
	"経る": "へる", "干る": "ひる", "射る": "いる", "鋳る": "いる",
	"診る": "みる", "観る": "みる", "視る": "みる",
	"出来る": "できる",
}

// homophone is a kana spelling shared by a godan lookalike and an
// ichidan verb. Kana input is read as the assumed verb; the others are
// reported by Explain.
type homophone struct {
	assumed string
	typ     verb.VerbType
	others  []string
}

var homophones = map[string]homophone{
	"かえる": {"帰る", verb.Godan, []string{"返る", "変える", "替える"}},
	"きる":  {"着る", verb.Ichidan, []string{"切る"}},
	"いる":  {"居る", verb.Ichidan, []string{"要る", "煎る"}},
	"へる":  {"減る", verb.Godan, []string{"経る"}},
	"ねる":  {"寝る", verb.Ichidan, []string{"練る"}},
	"しめる": {"閉める", verb.Ichidan, []string{"締める", "湿る"}},
	"ふける": {"老ける", verb.Ichidan, []string{"耽る"}},
}

// irregularPattern is one member of the closed irregular set.
type irregularPattern struct {
	base    string
	reading string
	typ     verb.IrregularType

	// teOnly kana bases (くる, いく, ある) only match as the whole word or
	// after a te-form, so つくる and めくる stay godan.
	teOnly bool
}

// irregularPatterns is checked in order; longer bases come first.
var irregularPatterns = []irregularPattern{
	{base: "いらっしゃる", reading: "いらっしゃる", typ: verb.Honorific},
	{base: "おっしゃる", reading: "おっしゃる", typ: verb.Honorific},
	{base: "仰る", reading: "おっしゃる", typ: verb.Honorific},
	{base: "くださる", reading: "くださる", typ: verb.Honorific},
	{base: "下さる", reading: "くださる", typ: verb.Honorific},
	{base: "為さる", reading: "なさる", typ: verb.Honorific},
	{base: "なさる", reading: "なさる", typ: verb.Honorific},
	{base: "御座る", reading: "ござる", typ: verb.Honorific},
	{base: "ござる", reading: "ござる", typ: verb.Honorific},
	{base: "する", reading: "する", typ: verb.Suru},
	{base: "来る", reading: "くる", typ: verb.Kuru},
	{base: "くる", reading: "くる", typ: verb.Kuru, teOnly: true},
	{base: "行く", reading: "いく", typ: verb.Iku},
	{base: "いく", reading: "いく", typ: verb.Iku, teOnly: true},
	{base: "有る", reading: "ある", typ: verb.Aru},
	{base: "在る", reading: "ある", typ: verb.Aru},
	{base: "ある", reading: "ある", typ: verb.Aru, teOnly: true},
}
