package input

// SuppressedKeys holds the raw codes of keys whose press was intercepted,
// so the matching release can be intercepted as well.
type SuppressedKeys struct {
	codes []uint32
}

func (s *SuppressedKeys) Add(code uint32) {
	s.codes = append(s.codes, code)
}

// Filter removes the first instance of code and reports whether there was
// one.
func (s *SuppressedKeys) Filter(code uint32) bool {
	for i, c := range s.codes {
		if c == code {
			s.codes = append(s.codes[:i], s.codes[i+1:]...)
			return true
		}
	}
	return false
}

func (s *SuppressedKeys) Len() int {
	return len(s.codes)
}
