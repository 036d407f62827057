// Package fieldpart renders the fragments that surround a form control: the
// label, the hint and the first validation error of a bound attribute.
//
// Parts are immutable values. Bind them with For, adjust them with the
// chained mutators and call Render:
//
//	out, err := fieldpart.NewHint().For(form, "login").Tag("span").Render()
//
// A part whose text resolves to the empty string renders nothing at all.
package fieldpart
