package game

// Verification is the outcome of scoring one row.
type Verification struct {
	Feedback [Cols]Feedback
	Exact    int // number of ExactMatch tiles
}

// Won reports whether every tile matched.
func (v Verification) Won() bool { return v.Exact == Cols }

// Verify scores guess against secret, records each tile's result on kb and
// returns the per-tile feedback. Both words must be Cols uppercase letters.
func Verify(guess, secret string, kb *Keyboard, rules Rules) Verification {
	var v Verification
	if rules == RulesStandard {
		v.Feedback = scoreStandard(guess, secret)
	} else {
		v.Feedback = scoreReference(guess, secret)
	}
	for i, f := range v.Feedback {
		if f == ExactMatch {
			v.Exact++
		}
		if kb != nil {
			kb.RecordFeedback(rune(guess[i]), keyTagFor(f))
		}
	}
	return v
}

// scoreReference checks each position independently: equal letters match,
// otherwise any occurrence in the secret counts as present. Repeated guess
// letters can all be "present" against a single occurrence in the secret.
func scoreReference(guess, secret string) [Cols]Feedback {
	var res [Cols]Feedback
	for i := 0; i < Cols; i++ {
		switch {
		case guess[i] == secret[i]:
			res[i] = ExactMatch
		case containsByte(secret, guess[i]):
			res[i] = PresentElsewhere
		default:
			res[i] = Absent
		}
	}
	return res
}

// scoreStandard implements two-pass scoring.
//
// Pass 1: mark exact matches and count the remaining secret letters.
// Pass 2: a non-exact guess letter is present only while unmatched copies
// of it remain in the secret.
func scoreStandard(guess, secret string) [Cols]Feedback {
	var res [Cols]Feedback
	var counts [26]int

	for i := 0; i < Cols; i++ {
		if guess[i] == secret[i] {
			res[i] = ExactMatch
		} else {
			counts[secret[i]-'A']++
		}
	}

	for i := 0; i < Cols; i++ {
		if res[i] == ExactMatch {
			continue
		}
		j := guess[i] - 'A'
		if counts[j] > 0 {
			res[i] = PresentElsewhere
			counts[j]--
		} else {
			res[i] = Absent
		}
	}
	return res
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}
