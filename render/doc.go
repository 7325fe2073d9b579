// Package render produces an indented text tree from a Describer. It walks
// the describe contract directly rather than going through tokens, so it
// needs no channel and no Loader on the other side.
//
// Output rules: entering any object prints its type name suffixed
// "(object)" and indents one level; each part prints "name: " followed by
// the scalar's text, "[null]" for a nil scalar, the nested object's render,
// or "(list)" with one line per element. Output is deterministic given
// deterministic input.
//
//	Person (object)
//	  Name: alice
//	  Address: Address (object)
//	    Street: Elm
//	  Tags: (list)
//	    a
//	    b
//	  Nickname: [null]
package render
