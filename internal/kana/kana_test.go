package kana

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToRomaji(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"かいて", "kaite"},
		{"よんで", "yonde"},
		{"はなして", "hanashite"},
		{"たべます", "tabemasu"},
		{"いって", "itte"},
		{"まっちゃ", "matcha"},
		{"べんきょうする", "benkyousuru"},
		{"きゃく", "kyaku"},
		{"しゃべる", "shaberu"},
		{"じゃない", "janai"},
		{"ちょっと", "chotto"},
		{"きんえん", "kin'en"},
		{"こんや", "kon'ya"},
		{"カタカナ", "katakana"},
		{"ファイル", "fairu"},
		{"ラーメン", "raamen"},
		{"食べる", "beru"},
		{"", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ToRomaji(tt.in))
		})
	}
}

func TestToHiragana(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "たべる", ToHiragana("タベル"))
	assert.Equal(t, "食べる", ToHiragana("食ベル"))
	assert.Equal(t, "らーめん", ToHiragana("ラーメン"))
	assert.Equal(t, "abc", ToHiragana("abc"))
}

func TestScriptPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, IsHiragana('あ'))
	assert.False(t, IsHiragana('ア'))
	assert.True(t, IsKatakana('ア'))
	assert.True(t, IsKatakana('ー'))
	assert.True(t, IsKanji('食'))
	assert.True(t, IsKanji('々'))
	assert.False(t, IsKanji('a'))
	assert.True(t, IsJapanese('る'))
	assert.False(t, IsJapanese('1'))

	assert.True(t, AllKana("たべる"))
	assert.True(t, AllKana("タベル"))
	assert.False(t, AllKana("食べる"))
	assert.False(t, AllKana(""))

	assert.True(t, ContainsKanji("持って来る"))
	assert.False(t, ContainsKanji("もってくる"))
}

func TestFirstInvalid(t *testing.T) {
	t.Parallel()

	r, bad := FirstInvalid("食べるx")
	assert.True(t, bad)
	assert.Equal(t, 'x', r)

	_, bad = FirstInvalid("食べる")
	assert.False(t, bad)

	r, bad = FirstInvalid("た べる")
	assert.True(t, bad)
	assert.Equal(t, ' ', r)
}

func TestVowel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r    rune
		want byte
		ok   bool
	}{
		{'べ', 'e', true},
		{'き', 'i', true},
		{'ミ', 'i', true},
		{'か', 'a', true},
		{'く', 'u', true},
		{'こ', 'o', true},
		{'ん', 0, false},
		{'っ', 0, false},
		{'食', 0, false},
	}

	for _, tt := range tests {
		got, ok := Vowel(tt.r)
		assert.Equal(t, tt.ok, ok, string(tt.r))
		assert.Equal(t, tt.want, got, string(tt.r))
	}
}
