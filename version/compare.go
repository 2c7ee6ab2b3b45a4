package version

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Compare compares two semantic versions, returning 1, -1 or 0.
func Compare(a, b string) (int, error) {
	parse := func(s string) (lo.Tuple3[int, int, int], error) {
		var v lo.Tuple3[int, int, int]
		_, err := fmt.Sscanf(strings.TrimPrefix(s, "v"), "%d.%d.%d", &v.A, &v.B, &v.C)
		return v, err
	}

	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range []lo.Tuple2[int, int]{
		{A: av.A, B: bv.A},
		{A: av.B, B: bv.B},
		{A: av.C, B: bv.C},
	} {
		switch {
		case pair.A > pair.B:
			return 1, nil
		case pair.A < pair.B:
			return -1, nil
		}
	}

	return 0, nil
}
