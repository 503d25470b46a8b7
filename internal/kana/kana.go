// Package kana handles Japanese script detection, kana folding and romanization.
package kana

import (
	"strings"
	"unicode"
)

const (
	iterationMark = '々'
	prolongedMark = 'ー'
)

// IsHiragana reports whether r is a hiragana character.
func IsHiragana(r rune) bool {
	return unicode.Is(unicode.Hiragana, r)
}

// IsKatakana reports whether r is a katakana character, including the prolonged sound mark.
func IsKatakana(r rune) bool {
	return unicode.Is(unicode.Katakana, r) || r == prolongedMark
}

// IsKana reports whether r is hiragana or katakana.
func IsKana(r rune) bool {
	return IsHiragana(r) || IsKatakana(r)
}

// IsKanji reports whether r is a CJK ideograph or the iteration mark 々.
func IsKanji(r rune) bool {
	return unicode.Is(unicode.Han, r) || r == iterationMark
}

// IsJapanese reports whether r is kana or kanji.
func IsJapanese(r rune) bool {
	return IsKana(r) || IsKanji(r)
}

// AllKana reports whether s is non-empty and written entirely in kana.
func AllKana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsKana(r) {
			return false
		}
	}
	return true
}

// ContainsKanji reports whether any rune of s is a kanji.
func ContainsKanji(s string) bool {
	return strings.IndexFunc(s, IsKanji) >= 0
}

// FirstInvalid returns the first rune of s that is not Japanese script.
func FirstInvalid(s string) (rune, bool) {
	for _, r := range s {
		if !IsJapanese(r) {
			return r, true
		}
	}
	return 0, false
}

// ToHiragana folds katakana in s to hiragana, leaving everything else untouched.
func ToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 'ァ' && r <= 'ヶ' {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}

// Vowel returns the vowel (a, i, u, e, o) that ends the mora r.
// Kana without a vowel (ん, っ) and non-kana return false.
func Vowel(r rune) (byte, bool) {
	h := []rune(ToHiragana(string(r)))[0]
	rom, ok := syllables[h]
	if !ok || rom == "n" || rom == "" {
		return 0, false
	}
	return rom[len(rom)-1], true
}
