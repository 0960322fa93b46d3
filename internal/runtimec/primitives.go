// Package runtimec owns the runtime primitive layer: a C source template
// the compiler writes verbatim ahead of emitted user code, plus the fixed
// registry of Forth primitive names and the C function each one targets.
package runtimec

// Primitive pairs a Forth word with the C function in the runtime template
// that implements it.
type Primitive struct {
	ForthWord string
	CFunc     string
}

// Primitives lists every name in the fixed primitive registry, in
// registration order.
func Primitives() []Primitive {
	out := make([]Primitive, len(primitiveTable))
	copy(out, primitiveTable)
	return out
}

var primitiveTable = []Primitive{
	{"<>", "prim_ne"},
	{"=", "prim_eq"},
	{"<", "prim_lt"},
	{"<s", "prim_lt_s"},
	{"<=", "prim_le"},
	{"<=s", "prim_le_s"},
	{">", "prim_gt"},
	{">s", "prim_gt_s"},
	{">=", "prim_ge"},
	{">=s", "prim_ge_s"},
	{"+", "prim_plus"},
	{"+s", "prim_plus_s"},
	{"+carry", "prim_plus_carry"},
	{"-", "prim_minus"},
	{"-s", "prim_minus_s"},
	{"*", "prim_star"},
	{"*s", "prim_star_s"},
	{"@", "prim_fetch"},
	{"!", "prim_store"},
	{"byte@", "prim_byte_fetch"},
	{"byte!", "prim_byte_store"},
	{"bytes=", "prim_bytes_equal"},
	{"allocate", "prim_allocate"},
	{"and-bits", "prim_and_bits"},
	{"call", "prim_call"},
	{"cell-bits", "prim_cell_bits"},
	{"cells", "prim_cells"},
	{"deallocate", "prim_deallocate"},
	{"drop", "prim_drop"},
	{"dup", "prim_dup"},
	{"flag", "prim_flag"},
	{"max->n-bits", "prim_max_to_n_bits"},
	{"n-bits->bitmask", "prim_n_bits_to_bitmask"},
	{"or-bits", "prim_or_bits"},
	{"os-error-message", "prim_os_error_message"},
	{"os-exit", "prim_os_exit"},
	{"os-read", "prim_os_read"},
	{"os-write", "prim_os_write"},
	{"reallocate", "prim_reallocate"},
	{"show", "prim_show"},
	{"show-byte", "prim_show_byte"},
	{"show-bytes", "prim_show_bytes"},
	{"show-hex", "prim_show_hex"},
	{"show-stack", "prim_show_stack"},
	{"shows", "prim_shows"},
	{"zero-cells", "prim_zero_cells"},
}
