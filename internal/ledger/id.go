package ledger

import "time"

// idSource hands out IDs derived from the creation time in Unix
// milliseconds. IDs are strictly increasing, two records created in the
// same millisecond get consecutive IDs.
type idSource struct {
	now  func() time.Time
	last int64
}

func (s *idSource) next() int64 {
	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}

	s.last = id
	return id
}

// observe makes sure that IDs handed out later are larger than id.
func (s *idSource) observe(id int64) {
	if id > s.last {
		s.last = id
	}
}
