package flush

import "github.com/stegoweave/gtal/sample"

// View writes every sample's current Values back into the view's
// backing carrier buffer, at the byte offset each sample was read from.
// Samples not touched by Matcher, ReserveMatcher, or Adjuster are
// written back unchanged; carrier bytes past the last complete sample
// are left untouched, since the view never held them.
//
// Complexity: O(view.Len()).
func View(v *sample.View) {
	buf := v.Buffer()
	for i := 0; i < v.Len(); i++ {
		s := v.At(i)
		copy(buf[s.Offset():s.Offset()+sample.BytesPerSample], s.Values[:])
	}
}
