package game

// Keyboard tracks a KeyTag for each of the 26 letters.
type Keyboard struct {
	tags    [26]KeyTag
	upgrade bool // only ever strengthen a tag
}

// NewKeyboard returns a keyboard with every letter KeyUnused.
// RulesStandard enables upgrade-only recording.
func NewKeyboard(rules Rules) *Keyboard {
	return &Keyboard{upgrade: rules == RulesStandard}
}

// RecordFeedback stores tag for letter. Non-letters are ignored.
func (k *Keyboard) RecordFeedback(letter rune, tag KeyTag) {
	i, ok := letterIndex(letter)
	if !ok {
		return
	}
	if k.upgrade && tag < k.tags[i] {
		return
	}
	k.tags[i] = tag
}

// TagOf returns the tag for letter; KeyUnused for untouched letters and non-letters.
func (k *Keyboard) TagOf(letter rune) KeyTag {
	i, ok := letterIndex(letter)
	if !ok {
		return KeyUnused
	}
	return k.tags[i]
}

// Tags returns a copy of all 26 tags, indexed A..Z.
func (k *Keyboard) Tags() [26]KeyTag { return k.tags }

func letterIndex(c rune) (int, bool) {
	c, ok := normalizeLetter(c)
	if !ok {
		return 0, false
	}
	return int(c - 'A'), true
}
