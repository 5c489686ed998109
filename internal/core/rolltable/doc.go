// Package rolltable builds weighted random roll tables from YAML source
// documents.
//
// A source document maps option names to the values they can produce, with
// an optional metadata block declaring column headers and named frequency
// distributions:
//
//	metadata:
//	  headers: [Option, Choice, Description]
//	  frequencies:
//	    default: {Common: 0.8, Rare: 0.2}
//	Common:
//	  - sword: a plain blade
//	Rare:
//	  - lantern: burns without oil
//
// New parses every source, resolves the requested frequency, and rolls die
// faces once. Rows and ExpandedRows are pure views over that roll; Resample
// rolls again.
package rolltable
