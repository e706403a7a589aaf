package ssa

// KeypadAlignment splits numpad style alignment (1-9, \an and ASS styles)
// into its components. Values outside of range are reported as invalid.
func KeypadAlignment(n int) (AlignH, AlignV, bool) {
	if n < 1 || n > 9 {
		return AlignHCenter, AlignVBottom, false
	}
	var v AlignV
	switch {
	case n >= 7:
		v = AlignVTop
	case n >= 4:
		v = AlignVMiddle
	default:
		v = AlignVBottom
	}
	var h AlignH
	switch n % 3 {
	case 1:
		h = AlignHLeft
	case 0:
		h = AlignHRight
	default:
		h = AlignHCenter
	}
	return h, v, true
}

// LegacyToKeypad remaps legacy alignment (\a and SSA styles) where 1-3 are
// bottom, 5-7 top and 9-11 middle. Gaps and out of range values (0, 4, 8,
// 12 and up) are invalid and must leave alignment unchanged.
func LegacyToKeypad(n int) (int, bool) {
	switch {
	case n >= 1 && n <= 3:
		return n, true
	case n >= 5 && n <= 7:
		return n + 2, true
	case n >= 9 && n <= 11:
		return n - 5, true
	}
	return 0, false
}

// LegacyAlignment is KeypadAlignment for legacy values.
func LegacyAlignment(n int) (AlignH, AlignV, bool) {
	k, ok := LegacyToKeypad(n)
	if !ok {
		return AlignHCenter, AlignVBottom, false
	}
	return KeypadAlignment(k)
}

// Keypad combines alignment components back into numpad value.
func Keypad(h AlignH, v AlignV) int {
	return int(v)*3 + int(h) + 1
}
