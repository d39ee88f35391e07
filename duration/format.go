package duration

import "strconv"

// Format renders e in canonical form: non-zero units from largest to
// smallest, separated by single spaces, e.g. "1year 2months 3h 4ms".
// A zero duration renders as "0s".
func Format(e Elapsed) string {
	var buf [128]byte
	return string(AppendFormat(buf[:0], e))
}

// AppendFormat appends the canonical form of e to dst.
func AppendFormat(dst []byte, e Elapsed) []byte {
	if e.IsZero() {
		return append(dst, "0s"...)
	}

	started := false
	emit := func(count uint64, u *UnitInfo) {
		if count == 0 {
			return
		}
		if started {
			dst = append(dst, ' ')
		}
		started = true
		dst = strconv.AppendUint(dst, count, 10)
		if count == 1 {
			dst = append(dst, u.Singular...)
		} else {
			dst = append(dst, u.Plural...)
		}
	}

	secs := e.secs
	for i := Year; i >= Second; i-- {
		u := &unitTable[i]
		emit(secs/u.Seconds, u)
		secs %= u.Seconds
	}

	nanos := e.nanos
	for i := Millisecond; i >= Nanosecond; i-- {
		u := &unitTable[i]
		emit(uint64(nanos/u.Nanos), u)
		nanos %= u.Nanos
	}
	return dst
}
