package options

import "math"

// Unbounded is the runtime sentinel for a maxOccurs of "unbounded" in the
// mapping file. It is math.MaxInt rather than a distinct type so callers can
// compare counts against MaxOccurs with a plain "<" without a type switch.
const Unbounded = math.MaxInt
