package manifest

import "fmt"

// editionAliases maps every accepted edition spelling to its
// canonical year code (spec.md §4.1). Aliases collapse to the GCC/
// Clang -std= year form; "2c" has no pre-standardization alias since
// C++26 is still in development under that single spelling.
var editionAliases = map[string]string{
	"98": "98",
	"03": "03",
	"0x": "11", "11": "11",
	"1y": "14", "14": "14",
	"1z": "17", "17": "17",
	"2a": "20", "20": "20",
	"2b": "23", "23": "23",
	"2c": "2c",
}

// editionYears maps canonical codes to a sortable integer, used only
// for ordering/display; "2c" (C++26) sorts after "23".
var editionYears = map[string]int{
	"98": 1998, "03": 2003, "11": 2011, "14": 2014,
	"17": 2017, "20": 2020, "23": 2023, "2c": 2026,
}

// ParseEdition validates a manifest edition string and normalizes it
// to its canonical year code.
func ParseEdition(s string) (Edition, error) {
	canonical, ok := editionAliases[s]
	if !ok {
		return Edition{}, fmt.Errorf("invalid edition %q", s)
	}
	return Edition{Year: editionYears[canonical], raw: canonical}, nil
}
