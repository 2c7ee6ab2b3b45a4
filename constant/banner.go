package constant

import _ "embed"

// Banner is the block-letter logo printed above the root command help.
//
//go:embed banner.txt
var Banner string
