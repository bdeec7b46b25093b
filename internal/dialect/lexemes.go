package dialect

// Canonical spellings for the node classes the tree cares about. The node
// model stores built-ins under these names regardless of input dialect.
const (
	ReRangeSymbol = "re.range"
	StrToReSymbol = "str.to.re"
)

// oldToCanonical folds the older surface onto the canonical spelling.
// Names absent from the table pass through unchanged.
var oldToCanonical = map[string]string{
	"Concat":         "str.++",
	"Length":         "str.len",
	"At":             "str.at",
	"CharAt":         "str.at",
	"Substring":      "str.substr",
	"Indexof":        "str.indexof",
	"Replace":        "str.replace",
	"StartsWith":     "str.prefixof",
	"EndsWith":       "str.suffixof",
	"Contains":       "str.contains",
	"Str2Int":        "str.to.int",
	"Int2Str":        "str.from.int",
	"Str2Reg":        StrToReSymbol,
	"RegexIn":        "str.in.re",
	"RegexConcat":    "re.++",
	"RegexStar":      "re.*",
	"RegexPlus":      "re.+",
	"RegexUnion":     "re.union",
	"RegexCharRange": ReRangeSymbol,
}

var canonicalToOld = invert(oldToCanonical)

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		// Aliases (CharAt/At) collapse; the first alphabetical key wins so
		// the table stays deterministic.
		if prev, ok := out[v]; ok && prev <= k {
			continue
		}
		out[v] = k
	}
	return out
}

// Canonical folds a surface symbol from dialect d onto the canonical
// spelling shared by both dialects.
func Canonical(d Dialect, symbol string) string {
	if d == Old {
		if canon, ok := oldToCanonical[symbol]; ok {
			return canon
		}
	}
	return symbol
}

// Surface translates a canonical symbol into dialect d's spelling.
func Surface(d Dialect, symbol string) string {
	if d == Old {
		if old, ok := canonicalToOld[symbol]; ok {
			return old
		}
	}
	return symbol
}

// Builtin reports whether the canonical symbol names a string/regex theory
// operator. Transformers must never rename these.
func Builtin(symbol string) bool {
	if _, ok := canonicalToOld[symbol]; ok {
		return true
	}
	_, ok := extraBuiltins[symbol]
	return ok
}

// Canonical operators with no distinct old-dialect spelling.
var extraBuiltins = map[string]struct{}{
	"str.<":           {},
	"str.<=":          {},
	"re.inter":        {},
	"re.opt":          {},
	"re.comp":         {},
	"re.diff":         {},
	"re.allchar":      {},
	"re.all":          {},
	"re.none":         {},
	"str.replace_all": {},
}
