// Package stringlist builds multiline strings line by line.
//
// A [StringList] is a slice of lines with a current [Indent]. Lines added
// through Append or Insert are split on newlines, prefixed with the current
// indent and stripped of trailing whitespace, which makes the type handy
// for generating source code and configuration files:
//
//	var sl stringlist.StringList
//	sl.Append("def foo():")
//	sl.WithIndentSize(1, func() {
//	    sl.Append("return 1")
//	})
//	sl.Blankline(true)
//	fmt.Println(sl.String())
//
// The With* helpers scope an indent change to a function call, restoring
// the previous indent afterwards.
package stringlist
