// Package dictionary holds the static, baked-at-build-time tables the
// permutation generators draw from: keywords, homoglyphs, a fragment
// character-mapping table, vowel sets and a QWERTY adjacency table. These are
// the same shape of data as the teacher's own pkg/permutation.NewGenerator()
// baked slices (commonWords/numbers/separators), generalized to the kinds
// spec.md §4.2 calls for.
package dictionary

// Keywords is about a hundred short ASCII tokens drawn from banking, platform
// and regional vocabulary, used by the Dictionary generator.
var Keywords = []string{
	"admin", "api", "app", "auth", "backup", "beta", "blog", "cdn", "chat", "cms",
	"dashboard", "db", "demo", "dev", "docs", "email", "ftp", "git", "help", "img",
	"internal", "lab", "mail", "mobile", "new", "old", "portal", "prod", "secure",
	"shop", "stage", "static", "support", "test", "vpn", "web", "wiki", "www",
	"assets", "cache", "cloud", "data", "files", "forum", "home", "media", "news",
	"office", "panel", "proxy", "search", "server", "store", "upload", "video",
	"account", "accounts", "bank", "banking", "billing", "card", "cash", "credit",
	"finance", "invoice", "login", "online", "pay", "payment", "payments", "wallet",
	"wire", "transfer", "secure2", "security", "sso", "oauth", "identity", "verify",
	"us", "eu", "uk", "asia", "ca", "au", "de", "fr", "jp", "cn", "in", "br", "mx",
	"2020", "2021", "2022", "2023", "2024", "2025", "2026",
	"1", "2", "3", "01", "02", "03",
}

// Vowels is the ASCII vowel set VowelSwap/VowelShuffle substitute over.
var Vowels = []rune{'a', 'e', 'i', 'o', 'u'}

// VowelFallback holds 'y' as a vowel stand-in set. No generator in this
// module reads it; the vowel generators work over Vowels only.
var VowelFallback = []rune{'y'}

// Homoglyphs maps an ASCII character to the visually similar Unicode (or
// ASCII) forms attackers substitute it with.
var Homoglyphs = map[rune][]rune{
	'a': {'ɑ', 'а', '@', '4'},
	'b': {'ḃ', '6'},
	'c': {'ϲ', 'с', '('},
	'd': {'ԁ'}, // the "d"->"cl" bigram substitution lives in CharMap, not here
	'e': {'е', 'ė', '3'},
	'g': {'ɡ', '9'},
	'h': {'һ'},
	'i': {'і', '1', '!', 'l'},
	'k': {'κ'},
	'l': {'ӏ', '1', 'i'},
	'm': {'м'},
	'n': {'ո'},
	'o': {'о', '0'},
	'p': {'р'},
	'q': {'ԛ'},
	'r': {'г'},
	's': {'ѕ', '5', '$'},
	't': {'τ', '7'},
	'u': {'υ', 'ս'},
	'v': {'ѵ'},
	'w': {'ѡ'},
	'x': {'х'},
	'y': {'у'},
	'z': {'ᴢ', '2'},
}

// HomoglyphBigrams maps a two-character fragment to the bigram substitutions
// that are visually indistinguishable at typical rendering sizes (e.g. "rn"
// reads as "m").
var HomoglyphBigrams = map[string][]string{
	"rn": {"m"},
	"vv": {"w"},
	"cl": {"d"},
	"nn": {"m"},
	"ii": {"n"},
}

// CharMap is the fragment substitution table used by the Mapped generator:
// an easy-to-miss typo of one fragment for another.
var CharMap = map[string][]string{
	"d":  {"cl"},
	"ck": {"kk"},
	"m":  {"rn"},
	"w":  {"vv"},
	"cl": {"d"},
	"ph": {"f"},
	"f":  {"ph"},
	"0":  {"o"},
	"o":  {"0"},
	"1":  {"l", "i"},
	"l":  {"1"},
	"s":  {"z"},
	"z":  {"s"},
	"g":  {"q"},
}

// QWERTYNeighbors gives the adjacent keys on a standard QWERTY layout for
// each letter and digit, used by Insertion and Replacement.
var QWERTYNeighbors = map[byte]string{
	'a': "qwsz",
	'b': "vghn",
	'c': "xdfv",
	'd': "serfcx",
	'e': "wsdr",
	'f': "drtgvc",
	'g': "ftyhbv",
	'h': "gyujnb",
	'i': "ujko",
	'j': "huikmn",
	'k': "jiolm",
	'l': "kop",
	'm': "njk",
	'n': "bhjm",
	'o': "iklp",
	'p': "ol",
	'q': "wa",
	'r': "edft",
	's': "awedxz",
	't': "rfgy",
	'u': "yhji",
	'v': "cfgb",
	'w': "qase",
	'x': "zsdc",
	'y': "tghu",
	'z': "asx",
	'0': "9op",
	'1': "2q",
	'2': "13qw",
	'3': "24we",
	'4': "35er",
	'5': "46rt",
	'6': "57ty",
	'7': "68yu",
	'8': "79ui",
	'9': "80io",
}
