package psl

// bakedSuffixes is a demonstrative snapshot of the ICANN section of the
// Public Suffix List (https://publicsuffix.org/), baked in at build time the
// same way the engine's other static dictionaries are baked in (see
// pkg/dictionary). It deliberately favors breadth across single-label gTLDs/
// ccTLDs plus the multi-label suffixes the spec calls out by name over an
// exhaustive mirror of the full list — a real build would regenerate this
// file from a freshly downloaded PSL, outside the core (spec.md §6).
var bakedSuffixes = []string{
	// generic TLDs
	"com", "net", "org", "info", "biz", "name", "pro", "mobi", "tel", "asia",
	"cat", "coop", "int", "jobs", "museum", "post", "travel", "xxx",
	"app", "dev", "io", "ai", "sh", "to", "me", "tv", "cc", "co", "ws", "nu",
	"xyz", "online", "site", "tech", "store", "cloud", "shop", "blog", "club",
	"live", "email", "work", "world", "today", "news", "media", "design",

	// ccTLDs
	"uk", "us", "ca", "au", "de", "fr", "es", "it", "nl", "be", "ch", "at",
	"se", "no", "dk", "fi", "pl", "cz", "ro", "hu", "gr", "pt", "ie", "ru",
	"jp", "cn", "kr", "in", "br", "mx", "ar", "cl", "co.nz", "nz", "za",
	"sg", "hk", "tw", "th", "vn", "id", "my", "ph", "eu", "su",

	// multi-label suffixes explicitly named in the specification
	"co.uk", "org.uk", "me.uk", "ltd.uk", "plc.uk", "net.uk", "sch.uk",
	"gov.uk", "ac.uk", "nhs.uk",
	"gov.co", "com.co", "net.co", "edu.co", "org.co", "mil.co", "nom.co",
	"edu.au", "com.au", "net.au", "org.au", "gov.au", "asn.au", "id.au",
	"co.jp", "or.jp", "ne.jp", "ac.jp", "ad.jp", "ed.jp", "go.jp", "gr.jp",
	"com.cn", "net.cn", "org.cn", "gov.cn", "edu.cn", "ac.cn",
	"co.in", "net.in", "org.in", "gov.in", "ac.in", "edu.in", "res.in",
	"com.br", "net.br", "org.br", "gov.br", "edu.br",
	"com.mx", "org.mx", "gob.mx", "edu.mx",
	"co.za", "org.za", "gov.za", "net.za", "web.za", "ac.za",
	"com.sg", "net.sg", "org.sg", "gov.sg", "edu.sg",
	"com.hk", "net.hk", "org.hk", "gov.hk", "edu.hk", "idv.hk",
	"co.nz", "net.nz", "org.nz", "govt.nz", "ac.nz", "school.nz",
	"com.ar", "net.ar", "org.ar", "gob.ar",
	"com.tw", "net.tw", "org.tw", "gov.tw", "edu.tw", "idv.tw",
}
