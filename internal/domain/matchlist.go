package domain

import "errors"

var ErrIndexOutOfRange = errors.New("match index out of range")

// MatchList is the ordered list of imported matches. It is owned by the
// caller; parser and calculator only ever see copies.
type MatchList struct {
	matches []MatchRecord
}

func (l *MatchList) Append(m ...MatchRecord) {
	l.matches = append(l.matches, m...)
}

func (l *MatchList) Remove(i int) error {
	if i < 0 || i >= len(l.matches) {
		return ErrIndexOutOfRange
	}
	l.matches = append(l.matches[:i:i], l.matches[i+1:]...)
	return nil
}

func (l *MatchList) Clear() {
	l.matches = nil
}

func (l *MatchList) Len() int {
	return len(l.matches)
}

func (l *MatchList) All() []MatchRecord {
	out := make([]MatchRecord, len(l.matches))
	copy(out, l.matches)
	return out
}
