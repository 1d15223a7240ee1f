// Package manifest encodes, parses, and checks the line-oriented build
// manifest consumed by the external build engine.
//
// The format is bit-exact:
//
//	DEF|<key>|<value>
//	cxx|<source-path>|<output-path>
//	ld|<artifact1>,<artifact2>,...|<final-output>
//
// Definitions come first, then one compile line per generated unit in
// generation order, then exactly one link line that lists every compile
// output once, in the same order. There is no escaping, so paths may not
// contain '|', ',' or newlines.
//
// Encoding is a pure single pass. A manifest that breaks any of these rules
// is never written; the encoder returns an *InvariantError instead, which
// signals a generator defect rather than a recoverable condition.
package manifest
