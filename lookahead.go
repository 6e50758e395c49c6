package jsonrepair

import "unicode"

// skipToCharacter returns the code-point distance from pos to the first
// occurrence of target at or after pos+fromOffset, treating an occurrence
// preceded by an odd number of backslashes as escaped. If none exists,
// returns the distance to EOF. Non-destructive.
func (s *scanner) skipToCharacter(target rune, fromOffset int) int {
	return s.skipToCharacters(map[rune]struct{}{target: {}}, fromOffset)
}

// skipToCharacters is the multi-target form of skipToCharacter.
func (s *scanner) skipToCharacters(targets map[rune]struct{}, fromOffset int) int {
	i := s.pos + fromOffset
	backslashes := 0
	for i < len(s.jsonStr) {
		ch := s.jsonStr[i]
		if ch == '\\' {
			backslashes++
			i++
			continue
		}
		if _, hit := targets[ch]; hit && backslashes%2 == 0 {
			return i - s.pos
		}
		backslashes = 0
		i++
	}
	return len(s.jsonStr) - s.pos
}

// skipWhitespacesAt returns the smallest offset >= fromOffset pointing at a
// non-whitespace character, or the distance to EOF. Non-destructive.
func (s *scanner) skipWhitespacesAt(fromOffset int) int {
	idx := fromOffset
	for {
		ch, ok := s.peek(idx)
		if !ok || !unicode.IsSpace(ch) {
			return idx
		}
		idx++
	}
}
