package payment

import "strconv"

// FormatNaira renders a whole-naira amount as "₦1,234,567".
func FormatNaira(amount int) string {
	s := strconv.Itoa(amount)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	if neg {
		return "-₦" + string(out)
	}
	return "₦" + string(out)
}
