package problemgen

// Operand bounds. The decimal operand is drawn in tenths so it always has
// at most one fractional digit.
const (
	MinTenths  = 1  // 0.1
	MaxTenths  = 99 // 9.9
	MinInteger = 2
	MaxInteger = 9
)
