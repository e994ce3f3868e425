package palette

import "slices"

// Selection is the ordered set of highlighted language codes together with
// the color issued to each. The counter only grows, so a code that is
// dropped and picked again gets a fresh color.
//
// Selection is a value; every mutating method returns a new Selection and
// leaves the receiver untouched.
type Selection struct {
	codes   []string
	colors  map[string]Color
	counter int
}

// Set replaces the selected codes. Codes that were already selected keep
// their color, new codes take ColorForIndex(counter). Duplicate input codes
// are ignored after their first occurrence.
func (s Selection) Set(codes []string) Selection {
	next := Selection{
		codes:   make([]string, 0, len(codes)),
		colors:  make(map[string]Color, len(codes)),
		counter: s.counter,
	}
	for _, code := range codes {
		if _, dup := next.colors[code]; dup {
			continue
		}
		next.codes = append(next.codes, code)
		if c, ok := s.colors[code]; ok {
			next.colors[code] = c
			continue
		}
		next.colors[code] = ColorForIndex(next.counter)
		next.counter++
	}
	return next
}

// Toggle removes code if selected, otherwise appends it.
func (s Selection) Toggle(code string) Selection {
	if s.Contains(code) {
		return s.Set(slices.DeleteFunc(slices.Clone(s.codes), func(c string) bool { return c == code }))
	}
	return s.Set(append(slices.Clone(s.codes), code))
}

// Clear drops every code but keeps the counter.
func (s Selection) Clear() Selection { return s.Set(nil) }

// Codes returns the selected codes in selection order.
func (s Selection) Codes() []string { return slices.Clone(s.codes) }

func (s Selection) Len() int { return len(s.codes) }

func (s Selection) Contains(code string) bool {
	_, ok := s.colors[code]
	return ok
}

// Color returns the color issued to a selected code.
func (s Selection) Color(code string) (Color, bool) {
	c, ok := s.colors[code]
	return c, ok
}

// Counter is the index the next newly selected code will use.
func (s Selection) Counter() int { return s.counter }
