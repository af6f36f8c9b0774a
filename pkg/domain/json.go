package domain

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// wireDomain is the JSON shape spec.md §6 fixes for a serialized Domain:
// {"fqdn":"…","tld":"…","domain":"…"}, where "tld" is the public suffix and
// "domain" is the registrable label.
type wireDomain struct {
	FQDN      string `json:"fqdn"`
	TLD       string `json:"tld"`
	Label     string `json:"domain"`
	Subdomain string `json:"subdomain,omitempty"`
}

// MarshalJSON renders the domain in the wire shape spec.md §6 requires.
func (d Domain) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireDomain{
		FQDN:      d.fqdn,
		TLD:       d.suffix,
		Label:     d.label,
		Subdomain: d.subdomain,
	})
}

// UnmarshalJSON parses the wire shape back into a Domain without
// re-validating against the public suffix table (mirroring Raw).
func (d *Domain) UnmarshalJSON(data []byte) error {
	var w wireDomain
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*d = Domain{fqdn: w.FQDN, suffix: w.TLD, label: w.Label, subdomain: w.Subdomain}
	return nil
}
