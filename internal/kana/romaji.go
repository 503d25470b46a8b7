package kana

import "strings"

// syllables maps each hiragana to its modified Hepburn spelling.
var syllables = map[rune]string{
	'あ': "a", 'い': "i", 'う': "u", 'え': "e", 'お': "o",
	'か': "ka", 'き': "ki", 'く': "ku", 'け': "ke", 'こ': "ko",
	'が': "ga", 'ぎ': "gi", 'ぐ': "gu", 'げ': "ge", 'ご': "go",
	'さ': "sa", 'し': "shi", 'す': "su", 'せ': "se", 'そ': "so",
	'ざ': "za", 'じ': "ji", 'ず': "zu", 'ぜ': "ze", 'ぞ': "zo",
	'た': "ta", 'ち': "chi", 'つ': "tsu", 'て': "te", 'と': "to",
	'だ': "da", 'ぢ': "ji", 'づ': "zu", 'で': "de", 'ど': "do",
	'な': "na", 'に': "ni", 'ぬ': "nu", 'ね': "ne", 'の': "no",
	'は': "ha", 'ひ': "hi", 'ふ': "fu", 'へ': "he", 'ほ': "ho",
	'ば': "ba", 'び': "bi", 'ぶ': "bu", 'べ': "be", 'ぼ': "bo",
	'ぱ': "pa", 'ぴ': "pi", 'ぷ': "pu", 'ぺ': "pe", 'ぽ': "po",
	'ま': "ma", 'み': "mi", 'む': "mu", 'め': "me", 'も': "mo",
	'や': "ya", 'ゆ': "yu", 'よ': "yo",
	'ら': "ra", 'り': "ri", 'る': "ru", 'れ': "re", 'ろ': "ro",
	'わ': "wa", 'ゐ': "i", 'ゑ': "e", 'を': "o", 'ん': "n",
	'ゔ': "vu",
	'ぁ': "a", 'ぃ': "i", 'ぅ': "u", 'ぇ': "e", 'ぉ': "o",
	'ゃ': "ya", 'ゅ': "yu", 'ょ': "yo", 'ゎ': "wa",
}

func isSmallY(r rune) bool {
	return r == 'ゃ' || r == 'ゅ' || r == 'ょ'
}

func isSmallVowel(r rune) bool {
	return r == 'ぁ' || r == 'ぃ' || r == 'ぅ' || r == 'ぇ' || r == 'ぉ'
}

// ToRomaji romanizes kana text using modified Hepburn.
// Characters that are not kana (kanji, punctuation) are dropped.
func ToRomaji(s string) string {
	runes := []rune(ToHiragana(s))
	var sb strings.Builder
	geminate := false

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case r == 'っ':
			geminate = true
			continue
		case r == prolongedMark:
			if out := sb.String(); out != "" {
				sb.WriteByte(out[len(out)-1])
			}
			continue
		}

		syl, ok := syllables[r]
		if !ok {
			geminate = false
			continue
		}

		// Youon: き + ゃ -> kya, し + ゃ -> sha
		if i+1 < len(runes) && isSmallY(runes[i+1]) && strings.HasSuffix(syl, "i") && len(syl) > 1 {
			base := strings.TrimSuffix(syl, "i")
			glide := syllables[runes[i+1]]
			if base == "sh" || base == "ch" || base == "j" {
				glide = glide[1:]
			}
			syl = base + glide
			i++
		}

		// ふぁ -> fa, ヴィ -> vi
		if i+1 < len(runes) && isSmallVowel(runes[i+1]) && len(syl) > 1 {
			syl = syl[:len(syl)-1] + syllables[runes[i+1]]
			i++
		}

		if r == 'ん' && i+1 < len(runes) {
			if next, ok := syllables[runes[i+1]]; ok && strings.ContainsAny(next[:1], "aiueoy") {
				syl = "n'"
			}
		}

		if geminate {
			if strings.HasPrefix(syl, "ch") {
				sb.WriteByte('t')
			} else if syl != "" && !strings.ContainsAny(syl[:1], "aiueon") {
				sb.WriteByte(syl[0])
			}
			geminate = false
		}

		sb.WriteString(syl)
	}

	return sb.String()
}
