package sample

import "errors"

// ErrEmptyChoice is returned by Pick when the candidate slice is empty.
var ErrEmptyChoice = errors.New("sample: choice from empty set")
